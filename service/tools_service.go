package service

import (
	"net/http"

	"github.com/Kotlang/opsGo/extensions"
	"github.com/Kotlang/opsGo/models"
	"github.com/labstack/echo/v4"
)

type ToolsService struct {
	events *extensions.EventClient
}

func ProvideToolsService(events *extensions.EventClient) *ToolsService {
	return &ToolsService{events: events}
}

// Admin only API. Builds a wa.me share link with a language-aware follow-up
// message for a lead.
func (s *ToolsService) WhatsAppLink(c echo.Context) error {
	phone := c.QueryParam("phoneNumber")
	if phone == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Phone number is required."})
	}

	message := c.QueryParam("message")
	if message == "" {
		message = extensions.FollowUpMessage(c.QueryParam("name"), c.QueryParam("cropName"), c.QueryParam("language"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"link":    extensions.BuildShareLink(phone, message),
		"message": message,
	})
}

// Admin only API. Fire-and-forget activity event.
func (s *ToolsService) RegisterEvent(c echo.Context) error {
	event := &models.EventModel{}
	if err := c.Bind(event); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid event payload."})
	}
	if event.EventType == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Event type is required."})
	}

	s.events.RegisterEvent(c.Request().Context(), event)
	return c.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
}
