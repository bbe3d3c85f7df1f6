package mocks

import (
	"context"
	"sync"

	"github.com/Kotlang/opsGo/models"
)

type EventRepository struct {
	mu     sync.Mutex
	Events []models.EventModel
	Err    error
}

func (r *EventRepository) Register(ctx context.Context, event *models.EventModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.Events = append(r.Events, *event)
	return nil
}

func (r *EventRepository) Registered() []models.EventModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.EventModel{}, r.Events...)
}
