package extensions

import (
	"context"
	"errors"

	"github.com/Kotlang/opsGo/auth"
	"github.com/Kotlang/opsGo/logger"
	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"go.uber.org/zap"
)

// EventClient registers dashboard activity events with the backend without
// blocking the request that produced them.
type EventClient struct {
	events restclient.EventRepositoryInterface
}

func NewEventClient(events restclient.EventRepositoryInterface) *EventClient {
	return &EventClient{events: events}
}

// RegisterEvent forwards the event on a fresh context carrying the caller's
// session, so the call outlives the originating request. The returned channel
// is buffered; callers may ignore it.
func (c *EventClient) RegisterEvent(requestCtx context.Context, event *models.EventModel) chan error {
	errChan := make(chan error, 1)

	session := auth.GetSession(requestCtx)

	go func() {
		if session == nil {
			logger.Error("Failed to get session for event registration", zap.String("eventType", event.EventType))
			errChan <- errors.New("Failed to get session from context")
			return
		}

		callCtx := auth.WithSession(context.Background(), session)
		if err := c.events.Register(callCtx, event); err != nil {
			logger.Error("Failed registering event", zap.String("eventType", event.EventType), zap.Error(err))
			errChan <- err
			return
		}
		errChan <- nil
	}()

	return errChan
}
