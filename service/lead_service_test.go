package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kotlang/opsGo/extensions"
	"github.com/Kotlang/opsGo/mocks"
	"github.com/Kotlang/opsGo/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadServiceForTest(leads *mocks.LeadRepository, users *mocks.UserRepository) *LeadService {
	events := extensions.NewEventClient(&mocks.EventRepository{})
	return ProvideLeadService(leads, users, events)
}

func postJSON(t *testing.T, handler echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestCreateLeadRejectsUnknownPhoneNumber(t *testing.T) {
	leads := &mocks.LeadRepository{}
	users := &mocks.UserRepository{UsersByPhone: map[string]*models.UserModel{}}
	service := newLeadServiceForTest(leads, users)

	rec := postJSON(t, service.CreateLead, "/ops/leads",
		`{"name":"Ravi","phoneNumber":"9970378011","cropName":"Tomato"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "create the user on the dashboard first")
	assert.Equal(t, 0, leads.CreateCalls)
}

func TestCreateLeadResolvesUserIdFromPhone(t *testing.T) {
	leads := &mocks.LeadRepository{}
	users := &mocks.UserRepository{UsersByPhone: map[string]*models.UserModel{
		"9970378011": {UserId: "user-42", Name: "Ravi", PhoneNumber: "9970378011"},
	}}
	service := newLeadServiceForTest(leads, users)

	rec := postJSON(t, service.CreateLead, "/ops/leads",
		`{"name":"Ravi","phoneNumber":"9970378011","cropName":"Tomato","hasStock":"Yes"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, leads.CreateCalls)
	assert.Equal(t, "user-42", leads.CreatedLeads[0].UserId)
	assert.True(t, leads.CreatedLeads[0].HasStock)
}

func TestCreateLeadReportsAllMissingFields(t *testing.T) {
	service := newLeadServiceForTest(&mocks.LeadRepository{}, &mocks.UserRepository{})

	rec := postJSON(t, service.CreateLead, "/ops/leads", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name")
	assert.Contains(t, rec.Body.String(), "Phone number")
	assert.Contains(t, rec.Body.String(), "Crop")
}

func TestDeleteLeadRequiresConfirmation(t *testing.T) {
	leads := &mocks.LeadRepository{}
	service := newLeadServiceForTest(leads, &mocks.UserRepository{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/ops/leads/lead-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("lead-1")

	require.NoError(t, service.DeleteLead(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, leads.DeletedLeadIds)
}

func TestLeadRecordRoundTripPreservesNumbersAndBooleans(t *testing.T) {
	original := &models.LeadModel{
		LeadId:             "lead-1",
		UserId:             "user-1",
		Name:               "Ravi",
		PhoneNumber:        "9970378011",
		CropName:           "Tomato",
		Capacity:           12.5,
		CapacityUnit:       "quintal",
		Experience:         7,
		Radius:             40,
		Confidence:         0.8,
		HasStock:           true,
		IsTcCompliant:      true,
		IsInterestedToWork: false,
		Tag:                "hot",
		LastInteractedOn:   "2024-05-01T10:30:00Z",
		Address:            models.Address{State: "Karnataka", District: "Mysuru", Taluk: "T1", Village: "V1"},
	}

	record := getLeadRecord(original)

	assert.Equal(t, "Yes", record.HasStock)
	assert.Equal(t, "Yes", record.IsTcCompliant)
	assert.Equal(t, "No", record.IsInterestedToWork)
	assert.Equal(t, "2024-05-01", record.LastInteractedOn)
	assert.Equal(t, "Hot", record.Tag)
	assert.Equal(t, "Mysuru", record.District)

	restored := getLeadModel(record)

	assert.Equal(t, original.Capacity, restored.Capacity)
	assert.Equal(t, original.Experience, restored.Experience)
	assert.Equal(t, original.Radius, restored.Radius)
	assert.Equal(t, original.Confidence, restored.Confidence)
	assert.Equal(t, original.HasStock, restored.HasStock)
	assert.Equal(t, original.IsTcCompliant, restored.IsTcCompliant)
	assert.Equal(t, original.IsInterestedToWork, restored.IsInterestedToWork)
	assert.Equal(t, original.Address, restored.Address)
}

func TestLeadPayloadKeepsNumericTypes(t *testing.T) {
	record := &models.LeadRecord{
		Name:        "Ravi",
		PhoneNumber: "9970378011",
		CropName:    "Tomato",
		Capacity:    12.5,
		Experience:  7,
		HasStock:    "No",
	}

	payload := getLeadPayload(record)

	assert.Equal(t, 12.5, payload["capacity"])
	assert.Equal(t, float64(7), payload["experience"])
	assert.Equal(t, false, payload["hasStock"])
}
