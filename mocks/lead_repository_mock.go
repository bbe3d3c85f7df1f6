package mocks

import (
	"context"
	"strings"

	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
)

// LeadRepository pages through an in-memory lead corpus and records mutating
// calls.
type LeadRepository struct {
	Leads []models.LeadModel

	CreateCalls     int
	CreatedLeads    []models.LeadModel
	UpdatedPatches  map[string]map[string]interface{}
	DeletedLeadIds  []string
	AddCompanyCalls int
	AddedUserIds    []string
	AddedCropName   string
	RemovedUserIds  []string

	// response to AddCompanyToUsers; defaults to "created" for every user
	AddCompanyResponse *models.AddCompanyResponse

	Err error
}

func (r *LeadRepository) Search(ctx context.Context, filters *models.LeadFilters, page, limit int) (*restclient.Page[models.LeadModel], error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if limit <= 0 {
		limit = 10
	}

	filtered := make([]models.LeadModel, 0, len(r.Leads))
	for _, lead := range r.Leads {
		if filters != nil && filters.Search != "" {
			if !strings.Contains(strings.ToLower(lead.Name), strings.ToLower(filters.Search)) &&
				!strings.Contains(lead.PhoneNumber, filters.Search) {
				continue
			}
		}
		filtered = append(filtered, lead)
	}

	start := page * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &restclient.Page[models.LeadModel]{
		Data:  filtered[start:end],
		Total: int64(len(filtered)),
		Page:  page,
		Limit: limit,
	}, nil
}

func (r *LeadRepository) FindByIds(ctx context.Context, ids []string) ([]models.LeadModel, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}

	var found []models.LeadModel
	for _, lead := range r.Leads {
		if wanted[lead.LeadId] {
			found = append(found, lead)
		}
	}
	return found, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.LeadModel) (*models.LeadModel, error) {
	r.CreateCalls++
	if r.Err != nil {
		return nil, r.Err
	}

	saved := *lead
	saved.Id()
	r.CreatedLeads = append(r.CreatedLeads, saved)
	r.Leads = append(r.Leads, saved)
	return &saved, nil
}

func (r *LeadRepository) Update(ctx context.Context, leadId string, patch map[string]interface{}) (*models.LeadModel, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	if r.UpdatedPatches == nil {
		r.UpdatedPatches = map[string]map[string]interface{}{}
	}
	r.UpdatedPatches[leadId] = patch

	for i := range r.Leads {
		if r.Leads[i].LeadId == leadId {
			return &r.Leads[i], nil
		}
	}
	return &models.LeadModel{LeadId: leadId}, nil
}

func (r *LeadRepository) DeleteById(ctx context.Context, leadId string) error {
	if r.Err != nil {
		return r.Err
	}
	r.DeletedLeadIds = append(r.DeletedLeadIds, leadId)
	return nil
}

func (r *LeadRepository) AddCompanyToUsers(ctx context.Context, companyId string, userIds []string, cropName string) (*models.AddCompanyResponse, error) {
	r.AddCompanyCalls++
	if r.Err != nil {
		return nil, r.Err
	}

	r.AddedUserIds = append(r.AddedUserIds, userIds...)
	r.AddedCropName = cropName

	if r.AddCompanyResponse != nil {
		return r.AddCompanyResponse, nil
	}

	statuses := make([]models.UserCompanyStatus, len(userIds))
	for i, userId := range userIds {
		statuses[i] = models.UserCompanyStatus{UserId: userId, Status: "created"}
	}
	return &models.AddCompanyResponse{Statuses: statuses}, nil
}

func (r *LeadRepository) RemoveCompanyFromUser(ctx context.Context, companyId, userId string) error {
	if r.Err != nil {
		return r.Err
	}
	r.RemovedUserIds = append(r.RemovedUserIds, userId)
	return nil
}
