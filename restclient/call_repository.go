package restclient

import (
	"context"
	"net/http"

	"github.com/Kotlang/opsGo/models"
)

type CallRepositoryInterface interface {
	FindByCompanyId(ctx context.Context, companyId string) ([]models.CallModel, error)
	FindByUserId(ctx context.Context, userId string) ([]models.CallModel, error)
}

type CallRepository struct {
	client *Client
}

func NewCallRepository(client *Client) *CallRepository {
	return &CallRepository{client: client}
}

func (r *CallRepository) FindByCompanyId(ctx context.Context, companyId string) ([]models.CallModel, error) {
	calls, err := Call[[]models.CallModel](ctx, r.client, http.MethodGet, "/call/company/"+companyId, nil, nil)
	if err != nil {
		return nil, err
	}
	return *calls, nil
}

func (r *CallRepository) FindByUserId(ctx context.Context, userId string) ([]models.CallModel, error) {
	calls, err := Call[[]models.CallModel](ctx, r.client, http.MethodGet, "/call/user/"+userId, nil, nil)
	if err != nil {
		return nil, err
	}
	return *calls, nil
}
