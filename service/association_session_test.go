package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Kotlang/opsGo/mocks"
	"github.com/Kotlang/opsGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyId = "company-1"

// builds a corpus bigger than one scan page so Load has to walk all pages
func newLeadCorpus(count int, associatedEvery int) []models.LeadModel {
	leads := make([]models.LeadModel, count)
	for i := range leads {
		lead := models.LeadModel{
			LeadId:      fmt.Sprintf("lead-%03d", i),
			UserId:      fmt.Sprintf("user-%03d", i),
			Name:        fmt.Sprintf("Farmer %03d", i),
			PhoneNumber: fmt.Sprintf("9%09d", i),
		}
		if associatedEvery > 0 && i%associatedEvery == 0 {
			lead.InterestsCompanies = []string{testCompanyId}
		}
		leads[i] = lead
	}
	return leads
}

func TestLoadCollectsAssociatedAcrossPages(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(250, 10)}
	session := NewAssociationSession(repo, testCompanyId)

	require.NoError(t, session.Load(context.TODO()))

	// every 10th of 250 leads is associated
	assert.Len(t, session.Associated(), 25)
}

func TestSearchExcludesAssociatedByUserId(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(30, 3)}
	session := NewAssociationSession(repo, testCompanyId)
	require.NoError(t, session.Load(context.TODO()))

	available, total, err := session.Search(context.TODO(), "", 0, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(30), total)
	for _, lead := range available {
		assert.NotContains(t, lead.InterestsCompanies, testCompanyId,
			"already associated lead %s must not be offered", lead.LeadId)
	}
	assert.Len(t, available, 20)
}

func TestSearchExcludesSelectedLeads(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(10, 0)}
	session := NewAssociationSession(repo, testCompanyId)
	require.NoError(t, session.Load(context.TODO()))

	session.Toggle(repo.Leads[0])
	session.Toggle(repo.Leads[1])

	available, _, err := session.Search(context.TODO(), "", 0, 10)
	require.NoError(t, err)

	assert.Len(t, available, 8)
	for _, lead := range available {
		assert.NotEqual(t, repo.Leads[0].LeadId, lead.LeadId)
		assert.NotEqual(t, repo.Leads[1].LeadId, lead.LeadId)
	}
}

func TestSubmitWithNothingNewSkipsBackend(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(10, 2)}
	session := NewAssociationSession(repo, testCompanyId)
	require.NoError(t, session.Load(context.TODO()))

	// selecting only an already-associated lead is not net-new
	session.Toggle(repo.Leads[0])

	response, err := session.Submit(context.TODO(), "")
	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Equal(t, 0, repo.AddCompanyCalls)
}

func TestSubmitMovesCreatedAndUpdatedIntoAssociated(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(10, 0)}
	repo.AddCompanyResponse = &models.AddCompanyResponse{
		Statuses: []models.UserCompanyStatus{
			{UserId: "user-000", Status: "created"},
			{UserId: "user-001", Status: "updated"},
			{UserId: "user-002", Status: "skipped"},
		},
	}

	session := NewAssociationSession(repo, testCompanyId)
	require.NoError(t, session.Load(context.TODO()))

	session.SelectPage(repo.Leads[:3])

	response, err := session.Submit(context.TODO(), "Tomato")
	require.NoError(t, err)
	assert.Len(t, response.Statuses, 3)
	assert.Equal(t, 1, repo.AddCompanyCalls)
	assert.Equal(t, "Tomato", repo.AddedCropName)
	assert.ElementsMatch(t, []string{"user-000", "user-001", "user-002"}, repo.AddedUserIds)

	associated := session.Associated()
	assert.Len(t, associated, 2)
	assert.Empty(t, session.Selected())
}

func TestToggleFlipsSelection(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(5, 0)}
	session := NewAssociationSession(repo, testCompanyId)

	session.Toggle(repo.Leads[0])
	assert.Len(t, session.Selected(), 1)

	session.Toggle(repo.Leads[0])
	assert.Empty(t, session.Selected())
}

func TestRemovePatchesLocalSet(t *testing.T) {
	repo := &mocks.LeadRepository{Leads: newLeadCorpus(10, 1)}
	session := NewAssociationSession(repo, testCompanyId)
	require.NoError(t, session.Load(context.TODO()))
	require.Len(t, session.Associated(), 10)

	require.NoError(t, session.Remove(context.TODO(), "user-003"))

	assert.Len(t, session.Associated(), 9)
	assert.Equal(t, []string{"user-003"}, repo.RemovedUserIds)
}
