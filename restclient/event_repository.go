package restclient

import (
	"context"
	"net/http"

	"github.com/Kotlang/opsGo/models"
)

type EventRepositoryInterface interface {
	Register(ctx context.Context, event *models.EventModel) error
}

type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) Register(ctx context.Context, event *models.EventModel) error {
	_, err := Call[struct{}](ctx, r.client, http.MethodPost, "/event", nil, event)
	return err
}
