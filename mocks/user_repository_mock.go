package mocks

import (
	"context"

	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
)

type UserRepository struct {
	UsersByPhone map[string]*models.UserModel
	Users        []models.UserModel

	UpdatedBuyers map[string]*models.UserModel

	Err error
}

func (r *UserRepository) FindOneByPhone(ctx context.Context, phone string) (*models.UserModel, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.UsersByPhone[phone], nil
}

func (r *UserRepository) Search(ctx context.Context, search, userType string, page, limit int) (*restclient.Page[models.UserModel], error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return &restclient.Page[models.UserModel]{
		Data:  r.Users,
		Total: int64(len(r.Users)),
		Page:  page,
		Limit: limit,
	}, nil
}

func (r *UserRepository) UpdateBuyer(ctx context.Context, userId string, user *models.UserModel) (*models.UserModel, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	if r.UpdatedBuyers == nil {
		r.UpdatedBuyers = map[string]*models.UserModel{}
	}
	r.UpdatedBuyers[userId] = user
	return user, nil
}

func (r *UserRepository) Nearby(ctx context.Context, userType string, address models.Address, radiusKm float64, page, limit int) (*restclient.Page[models.UserModel], error) {
	return r.Search(ctx, "", userType, page, limit)
}
