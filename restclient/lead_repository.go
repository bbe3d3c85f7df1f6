package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Kotlang/opsGo/models"
)

type LeadRepositoryInterface interface {
	Search(ctx context.Context, filters *models.LeadFilters, page, limit int) (*Page[models.LeadModel], error)
	FindByIds(ctx context.Context, ids []string) ([]models.LeadModel, error)
	Create(ctx context.Context, lead *models.LeadModel) (*models.LeadModel, error)
	Update(ctx context.Context, leadId string, patch map[string]interface{}) (*models.LeadModel, error)
	DeleteById(ctx context.Context, leadId string) error
	AddCompanyToUsers(ctx context.Context, companyId string, userIds []string, cropName string) (*models.AddCompanyResponse, error)
	RemoveCompanyFromUser(ctx context.Context, companyId, userId string) error
}

type LeadRepository struct {
	client *Client
}

func NewLeadRepository(client *Client) *LeadRepository {
	return &LeadRepository{client: client}
}

func (r *LeadRepository) Search(ctx context.Context, filters *models.LeadFilters, page, limit int) (*Page[models.LeadModel], error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	query := getLeadQuery(filters)
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return Call[Page[models.LeadModel]](ctx, r.client, http.MethodGet, "/aggregator-leads", query, nil)
}

func (r *LeadRepository) FindByIds(ctx context.Context, ids []string) ([]models.LeadModel, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	leads, err := Call[[]models.LeadModel](ctx, r.client, http.MethodGet, "/aggregator-leads/bulk", query, nil)
	if err != nil {
		return nil, err
	}
	return *leads, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.LeadModel) (*models.LeadModel, error) {
	return Call[models.LeadModel](ctx, r.client, http.MethodPost, "/aggregator-leads", nil, lead)
}

func (r *LeadRepository) Update(ctx context.Context, leadId string, patch map[string]interface{}) (*models.LeadModel, error) {
	return Call[models.LeadModel](ctx, r.client, http.MethodPatch, "/aggregator-leads/"+leadId, nil, patch)
}

func (r *LeadRepository) DeleteById(ctx context.Context, leadId string) error {
	_, err := Call[struct{}](ctx, r.client, http.MethodDelete, "/aggregator-leads/"+leadId, nil, nil)
	return err
}

func (r *LeadRepository) AddCompanyToUsers(ctx context.Context, companyId string, userIds []string, cropName string) (*models.AddCompanyResponse, error) {
	body := map[string]interface{}{
		"companyId": companyId,
		"userIds":   userIds,
	}
	if cropName != "" {
		body["cropName"] = cropName
	}

	return Call[models.AddCompanyResponse](ctx, r.client, http.MethodPost, "/aggregator-leads/add-company-to-users", nil, body)
}

func (r *LeadRepository) RemoveCompanyFromUser(ctx context.Context, companyId, userId string) error {
	body := map[string]interface{}{
		"companyId": companyId,
		"userId":    userId,
	}

	_, err := Call[struct{}](ctx, r.client, http.MethodPost, "/aggregator-leads/remove-company-from-user", nil, body)
	return err
}

func getLeadQuery(filters *models.LeadFilters) url.Values {
	query := url.Values{}

	if filters == nil {
		return query
	}

	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	if filters.CropName != "" {
		query.Set("cropName", filters.CropName)
	}

	if filters.Tag != "" {
		query.Set("tag", filters.Tag)
	}

	if filters.State != "" {
		query.Set("state", filters.State)
	}

	if filters.District != "" {
		query.Set("district", filters.District)
	}

	if filters.Taluk != "" {
		query.Set("taluk", filters.Taluk)
	}

	if filters.Village != "" {
		query.Set("village", filters.Village)
	}

	if filters.HasStock != nil {
		query.Set("hasStock", fmt.Sprintf("%t", *filters.HasStock))
	}

	if filters.TcCompliant != nil {
		query.Set("isTcCompliant", fmt.Sprintf("%t", *filters.TcCompliant))
	}

	if len(filters.PhoneNumbers) > 0 {
		query.Set("phoneNumbers", strings.Join(filters.PhoneNumbers, ","))
	}

	return query
}
