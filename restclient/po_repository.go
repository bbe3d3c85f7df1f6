package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kotlang/opsGo/models"
)

type PoRepositoryInterface interface {
	Fetch(ctx context.Context, companyId string, page, limit int) (*Page[models.POModel], error)
	FindOneById(ctx context.Context, poId string) (*models.POModel, error)
	Create(ctx context.Context, po *models.POModel) (*models.POModel, error)
	Update(ctx context.Context, poId string, patch map[string]interface{}) (*models.POModel, error)
}

type PoRepository struct {
	client *Client
}

func NewPoRepository(client *Client) *PoRepository {
	return &PoRepository{client: client}
}

func (r *PoRepository) Fetch(ctx context.Context, companyId string, page, limit int) (*Page[models.POModel], error) {
	query := url.Values{}
	if companyId != "" {
		query.Set("companyId", companyId)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return Call[Page[models.POModel]](ctx, r.client, http.MethodGet, "/po", query, nil)
}

func (r *PoRepository) FindOneById(ctx context.Context, poId string) (*models.POModel, error) {
	return Call[models.POModel](ctx, r.client, http.MethodGet, "/po/"+poId, nil, nil)
}

func (r *PoRepository) Create(ctx context.Context, po *models.POModel) (*models.POModel, error) {
	return Call[models.POModel](ctx, r.client, http.MethodPost, "/po", nil, po)
}

func (r *PoRepository) Update(ctx context.Context, poId string, patch map[string]interface{}) (*models.POModel, error) {
	return Call[models.POModel](ctx, r.client, http.MethodPatch, "/po/"+poId, nil, patch)
}
