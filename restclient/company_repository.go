package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kotlang/opsGo/models"
)

type CompanyRepositoryInterface interface {
	Fetch(ctx context.Context, search string, page, limit int) (*Page[models.CompanyModel], error)
	FindOneById(ctx context.Context, companyId string) (*models.CompanyModel, error)
}

type CompanyRepository struct {
	client *Client
}

func NewCompanyRepository(client *Client) *CompanyRepository {
	return &CompanyRepository{client: client}
}

func (r *CompanyRepository) Fetch(ctx context.Context, search string, page, limit int) (*Page[models.CompanyModel], error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return Call[Page[models.CompanyModel]](ctx, r.client, http.MethodGet, "/po-companies", query, nil)
}

func (r *CompanyRepository) FindOneById(ctx context.Context, companyId string) (*models.CompanyModel, error) {
	return Call[models.CompanyModel](ctx, r.client, http.MethodGet, "/po-companies/"+companyId, nil, nil)
}
