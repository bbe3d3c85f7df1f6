package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
)

// page size used when walking the full lead listing at session start
const associationScanPageSize = 100

var ErrNothingToUpdate = errors.New("No new leads selected. Nothing to update.")

// AssociationSession backs the "associate aggregator leads with a company"
// multi-select. Leads already linked to the company are collected eagerly by
// walking every page of the listing; the picker then serves paginated,
// searchable pages of the remaining leads. Selection is a set of lead ids
// independent of the displayed page.
type AssociationSession struct {
	mu        sync.Mutex
	leads     restclient.LeadRepositoryInterface
	companyId string

	// keyed by userId; exclusion from the picker matches on the underlying
	// user, not the lead id
	associated map[string]models.LeadModel
	// keyed by leadId
	selected map[string]models.LeadModel
}

func NewAssociationSession(leads restclient.LeadRepositoryInterface, companyId string) *AssociationSession {
	return &AssociationSession{
		leads:      leads,
		companyId:  companyId,
		associated: map[string]models.LeadModel{},
		selected:   map[string]models.LeadModel{},
	}
}

// Load walks every page of the lead listing and keeps the leads whose
// interestsCompanies already contains this company. Aborts between pages when
// the context is cancelled.
func (s *AssociationSession) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.leads.Search(ctx, nil, page, associationScanPageSize)
		if err != nil {
			return err
		}

		for _, lead := range result.Data {
			for _, companyId := range lead.InterestsCompanies {
				if companyId == s.companyId {
					s.associated[lead.UserId] = lead
					break
				}
			}
		}

		fetched := (page + 1) * associationScanPageSize
		if len(result.Data) == 0 || int64(fetched) >= result.Total {
			return nil
		}
	}
}

// Search serves one page of the picker: the backend page minus leads already
// associated (matched by userId) and leads currently selected (by lead id).
func (s *AssociationSession) Search(ctx context.Context, query string, page, limit int) ([]models.LeadModel, int64, error) {
	filters := &models.LeadFilters{Search: query}
	result, err := s.leads.Search(ctx, filters, page, limit)
	if err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	available := make([]models.LeadModel, 0, len(result.Data))
	for _, lead := range result.Data {
		if _, ok := s.associated[lead.UserId]; ok {
			continue
		}
		if _, ok := s.selected[lead.LeadId]; ok {
			continue
		}
		available = append(available, lead)
	}

	return available, result.Total, nil
}

// Toggle flips a lead in or out of the selection set.
func (s *AssociationSession) Toggle(lead models.LeadModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[lead.LeadId]; ok {
		delete(s.selected, lead.LeadId)
		return
	}
	s.selected[lead.LeadId] = lead
}

// SelectPage adds every lead visible on the current page to the selection.
func (s *AssociationSession) SelectPage(leads []models.LeadModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range leads {
		s.selected[lead.LeadId] = lead
	}
}

func (s *AssociationSession) Associated() []models.LeadModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedLeads(s.associated)
}

func (s *AssociationSession) Selected() []models.LeadModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedLeads(s.selected)
}

// Submit maps the net-new selected leads to their user ids and posts them to
// add-company-to-users. With nothing net-new selected, no backend call is
// made. On success the server's per-user statuses decide which leads move
// into the associated set; the full listing is not refetched.
func (s *AssociationSession) Submit(ctx context.Context, cropName string) (*models.AddCompanyResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	netNew := map[string]models.LeadModel{}
	for _, lead := range s.selected {
		if _, ok := s.associated[lead.UserId]; ok {
			continue
		}
		netNew[lead.UserId] = lead
	}

	if len(netNew) == 0 {
		return nil, ErrNothingToUpdate
	}

	userIds := make([]string, 0, len(netNew))
	for userId := range netNew {
		userIds = append(userIds, userId)
	}
	sort.Strings(userIds)

	response, err := s.leads.AddCompanyToUsers(ctx, s.companyId, userIds, cropName)
	if err != nil {
		return nil, err
	}

	for _, status := range response.Statuses {
		lead, ok := netNew[status.UserId]
		if !ok {
			continue
		}
		if status.Status == "created" || status.Status == "updated" {
			s.associated[status.UserId] = lead
		}
		delete(s.selected, lead.LeadId)
	}

	return response, nil
}

// Remove detaches a user from the company and patches the local set.
func (s *AssociationSession) Remove(ctx context.Context, userId string) error {
	if err := s.leads.RemoveCompanyFromUser(ctx, s.companyId, userId); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.associated, userId)
	return nil
}

func sortedLeads(byKey map[string]models.LeadModel) []models.LeadModel {
	leads := make([]models.LeadModel, 0, len(byKey))
	for _, lead := range byKey {
		leads = append(leads, lead)
	}
	sort.Slice(leads, func(i, j int) bool {
		if leads[i].Name != leads[j].Name {
			return leads[i].Name < leads[j].Name
		}
		return leads[i].LeadId < leads[j].LeadId
	})
	return leads
}
