package service

import (
	"net/http"
	"time"

	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

// LocationService exposes the cascading state/district/taluk/village selector
// over HTTP. Each open selector form is a server-side session.
type LocationService struct {
	locations restclient.LocationFetcher
	users     restclient.UserRepositoryInterface
	sessions  *cache.Cache
}

func ProvideLocationService(locations restclient.LocationFetcher, users restclient.UserRepositoryInterface) *LocationService {
	return &LocationService{
		locations: locations,
		users:     users,
		sessions:  cache.New(30*time.Minute, 10*time.Minute),
	}
}

type cascadeResponse struct {
	SessionId string      `json:"sessionId"`
	Cascade   CascadeView `json:"cascade"`
}

func (s *LocationService) StartCascade(c echo.Context) error {
	cascade := NewCascade(s.locations)
	cascade.LoadStates(c.Request().Context())

	sessionId := uuid.New().String()
	s.sessions.Set(sessionId, cascade, cache.DefaultExpiration)

	return c.JSON(http.StatusCreated, cascadeResponse{SessionId: sessionId, Cascade: cascade.View()})
}

func (s *LocationService) GetCascade(c echo.Context) error {
	cascade, ok := s.cascade(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown cascade session."})
	}
	return c.JSON(http.StatusOK, cascadeResponse{SessionId: c.Param("id"), Cascade: cascade.View()})
}

type selectRequest struct {
	Level string `json:"level"`
	Value string `json:"value"`
}

func (s *LocationService) Select(c echo.Context) error {
	cascade, ok := s.cascade(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown cascade session."})
	}

	req := &selectRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid selection payload."})
	}

	ctx := c.Request().Context()
	switch req.Level {
	case "state":
		cascade.SelectState(ctx, req.Value)
	case "district":
		cascade.SelectDistrict(ctx, req.Value)
	case "taluk":
		cascade.SelectTaluk(ctx, req.Value)
	case "village":
		cascade.SelectVillage(req.Value)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown cascade level."})
	}

	return c.JSON(http.StatusOK, cascadeResponse{SessionId: c.Param("id"), Cascade: cascade.View()})
}

type prefillRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type prefillResponse struct {
	SessionId string            `json:"sessionId"`
	Cascade   CascadeView       `json:"cascade"`
	User      *models.UserModel `json:"user"`
}

// Prefill resolves a phone number to a backend user and seeds the cascade
// from that user's stored address.
func (s *LocationService) Prefill(c echo.Context) error {
	cascade, ok := s.cascade(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown cascade session."})
	}

	req := &prefillRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid prefill payload."})
	}

	ctx := c.Request().Context()
	user, err := s.users.FindOneByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return renderError(c, err)
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "No user found for this phone number. Please create the user on the dashboard first.",
		})
	}

	cascade.Prefill(ctx, user.Address)

	return c.JSON(http.StatusOK, prefillResponse{
		SessionId: c.Param("id"),
		Cascade:   cascade.View(),
		User:      user,
	})
}

// cascade looks up a session and slides its expiry.
func (s *LocationService) cascade(sessionId string) (*Cascade, bool) {
	value, found := s.sessions.Get(sessionId)
	if !found {
		return nil, false
	}

	cascade := value.(*Cascade)
	s.sessions.Set(sessionId, cascade, cache.DefaultExpiration)
	return cascade, true
}
