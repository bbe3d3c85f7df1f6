package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kotlang/opsGo/models"
)

type UserRepositoryInterface interface {
	FindOneByPhone(ctx context.Context, phone string) (*models.UserModel, error)
	Search(ctx context.Context, search, userType string, page, limit int) (*Page[models.UserModel], error)
	UpdateBuyer(ctx context.Context, userId string, user *models.UserModel) (*models.UserModel, error)
	Nearby(ctx context.Context, userType string, address models.Address, radiusKm float64, page, limit int) (*Page[models.UserModel], error)
}

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// FindOneByPhone resolves a phone number to a backend user. First match wins;
// returns nil without error when no user matches.
func (r *UserRepository) FindOneByPhone(ctx context.Context, phone string) (*models.UserModel, error) {
	query := url.Values{}
	query.Set("search", phone)

	page, err := Call[Page[models.UserModel]](ctx, r.client, http.MethodGet, "/users", query, nil)
	if err != nil {
		return nil, err
	}

	if len(page.Data) == 0 {
		return nil, nil
	}
	return &page.Data[0], nil
}

func (r *UserRepository) Search(ctx context.Context, search, userType string, page, limit int) (*Page[models.UserModel], error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if userType != "" {
		query.Set("userType", userType)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return Call[Page[models.UserModel]](ctx, r.client, http.MethodGet, "/users", query, nil)
}

func (r *UserRepository) UpdateBuyer(ctx context.Context, userId string, user *models.UserModel) (*models.UserModel, error) {
	return Call[models.UserModel](ctx, r.client, http.MethodPut, "/users/update-buyer/"+userId, nil, user)
}

func (r *UserRepository) Nearby(ctx context.Context, userType string, address models.Address, radiusKm float64, page, limit int) (*Page[models.UserModel], error) {
	query := url.Values{}
	query.Set("userType", userType)
	if address.State != "" {
		query.Set("state", address.State)
	}
	if address.District != "" {
		query.Set("district", address.District)
	}
	if address.Taluk != "" {
		query.Set("taluk", address.Taluk)
	}
	if radiusKm > 0 {
		query.Set("radius", fmt.Sprintf("%g", radiusKm))
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return Call[Page[models.UserModel]](ctx, r.client, http.MethodGet, "/users", query, nil)
}
