package service

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kotlang/opsGo/extensions"
	"github.com/Kotlang/opsGo/logger"
	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LeadService struct {
	leads  restclient.LeadRepositoryInterface
	users  restclient.UserRepositoryInterface
	events *extensions.EventClient
}

func ProvideLeadService(leads restclient.LeadRepositoryInterface, users restclient.UserRepositoryInterface, events *extensions.EventClient) *LeadService {
	return &LeadService{leads: leads, users: users, events: events}
}

// Admin only API
func (s *LeadService) FetchLeads(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filters := getLeadFilters(c)

	result, err := s.leads.Search(c.Request().Context(), filters, page, limit)
	if err != nil {
		logger.Error("Error fetching leads", zap.Error(err))
		return renderError(c, err)
	}

	records := make([]*models.LeadRecord, len(result.Data))
	for i, lead := range result.Data {
		records[i] = getLeadRecord(&lead)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  records,
		"total": result.Total,
		"page":  result.Page,
		"limit": result.Limit,
	})
}

// Admin only API
func (s *LeadService) BulkGetLeads(c echo.Context) error {
	ids := strings.Split(c.QueryParam("ids"), ",")

	leads, err := s.leads.FindByIds(c.Request().Context(), ids)
	if err != nil {
		logger.Error("Error fetching leads", zap.Error(err))
		return renderError(c, err)
	}

	records := make([]*models.LeadRecord, len(leads))
	for i, lead := range leads {
		records[i] = getLeadRecord(&lead)
	}
	return c.JSON(http.StatusOK, records)
}

// Admin only API. A lead can only be created for a phone number that already
// resolves to a backend user; unknown numbers are rejected before any create
// call is issued.
func (s *LeadService) CreateLead(c echo.Context) error {
	record := &models.LeadRecord{}
	if err := c.Bind(record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid lead payload."})
	}

	if err := ValidateLeadRecord(record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	user, err := s.users.FindOneByPhone(ctx, record.PhoneNumber)
	if err != nil {
		logger.Error("Error looking up user by phone", zap.String("phone", record.PhoneNumber), zap.Error(err))
		return renderError(c, err)
	}
	if user == nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "No user found for this phone number. Please create the user on the dashboard first.",
		})
	}

	lead := getLeadModel(record)
	lead.UserId = user.UserId

	saved, err := s.leads.Create(ctx, lead)
	if err != nil {
		logger.Error("Error saving lead", zap.Error(err))
		return renderError(c, err)
	}

	s.events.RegisterEvent(ctx, &models.EventModel{
		EventType: "lead-created",
		UserId:    saved.UserId,
		TemplateParameters: map[string]string{
			"leadId": saved.LeadId,
			"crop":   saved.CropName,
		},
	})

	return c.JSON(http.StatusCreated, getLeadRecord(saved))
}

// Admin only API
func (s *LeadService) UpdateLead(c echo.Context) error {
	leadId := c.Param("id")

	record := &models.LeadRecord{}
	if err := c.Bind(record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid lead payload."})
	}

	saved, err := s.leads.Update(c.Request().Context(), leadId, getLeadPayload(record))
	if err != nil {
		logger.Error("Error saving lead", zap.String("leadId", leadId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, getLeadRecord(saved))
}

// Admin only API. Deletion requires confirm=true, the dashboard's
// confirmation dialog.
func (s *LeadService) DeleteLead(c echo.Context) error {
	leadId := c.Param("id")

	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Deletion must be confirmed."})
	}

	if err := s.leads.DeleteById(c.Request().Context(), leadId); err != nil {
		logger.Error("Error deleting lead", zap.String("leadId", leadId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "Success"})
}

func getLeadFilters(c echo.Context) *models.LeadFilters {
	filters := &models.LeadFilters{
		Search:   c.QueryParam("search"),
		CropName: c.QueryParam("cropName"),
		Tag:      c.QueryParam("tag"),
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Taluk:    c.QueryParam("taluk"),
		Village:  c.QueryParam("village"),
	}

	if val := c.QueryParam("hasStock"); val != "" {
		hasStock := val == "true"
		filters.HasStock = &hasStock
	}
	if val := c.QueryParam("isTcCompliant"); val != "" {
		tcCompliant := val == "true"
		filters.TcCompliant = &tcCompliant
	}
	return filters
}

var yesNoByBool = map[bool]string{true: "Yes", false: "No"}
var boolByYesNo = map[string]bool{"Yes": true, "No": false}

// tags the dashboard offers in its dropdown; anything else is free text
var knownLeadTags = map[string]string{
	"hot":     "Hot",
	"warm":    "Warm",
	"cold":    "Cold",
	"dnp":     "DNP",
	"invalid": "Invalid",
}

func getLeadRecord(lead *models.LeadModel) *models.LeadRecord {
	record := &models.LeadRecord{}
	copier.CopyWithOption(record, lead, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	record.HasStock = yesNoByBool[lead.HasStock]
	record.IsTcCompliant = yesNoByBool[lead.IsTcCompliant]
	record.IsInterestedToWork = yesNoByBool[lead.IsInterestedToWork]

	record.State = lead.Address.State
	record.District = lead.Address.District
	record.Taluk = lead.Address.Taluk
	record.Village = lead.Address.Village

	record.LastInteractedOn = formatDate(lead.LastInteractedOn)
	record.NextActionDueOn = formatDate(lead.NextActionDueOn)
	record.Tag = coerceTag(lead.Tag)

	return record
}

func getLeadModel(record *models.LeadRecord) *models.LeadModel {
	lead := &models.LeadModel{}
	copier.CopyWithOption(lead, record, copier.Option{IgnoreEmpty: true, DeepCopy: true})

	lead.HasStock = boolByYesNo[record.HasStock]
	lead.IsTcCompliant = boolByYesNo[record.IsTcCompliant]
	lead.IsInterestedToWork = boolByYesNo[record.IsInterestedToWork]

	lead.Address = models.Address{
		State:    record.State,
		District: record.District,
		Taluk:    record.Taluk,
		Village:  record.Village,
	}
	lead.Tag = coerceTag(record.Tag)

	return lead
}

// getLeadPayload builds the PATCH body for an edited lead. Numeric fields
// stay numbers, Yes/No strings go back to booleans.
func getLeadPayload(record *models.LeadRecord) map[string]interface{} {
	lead := getLeadModel(record)

	return map[string]interface{}{
		"name":               lead.Name,
		"phoneNumber":        lead.PhoneNumber,
		"cropName":           lead.CropName,
		"capacity":           lead.Capacity,
		"capacityUnit":       lead.CapacityUnit,
		"experience":         lead.Experience,
		"frequency":          lead.Frequency,
		"hasStock":           lead.HasStock,
		"stock":              lead.Stock,
		"radius":             lead.Radius,
		"confidence":         lead.Confidence,
		"isTcCompliant":      lead.IsTcCompliant,
		"isInterestedToWork": lead.IsInterestedToWork,
		"lastInteractedOn":   lead.LastInteractedOn,
		"nextAction":         lead.NextAction,
		"nextActionDueOn":    lead.NextActionDueOn,
		"notes":              lead.Notes,
		"tag":                lead.Tag,
		"address":            lead.Address,
	}
}

// formatDate renders a backend timestamp as yyyy-mm-dd for the table; values
// already in that form pass through unchanged.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.Format("2006-01-02")
	}
	return value
}

func coerceTag(tag string) string {
	if canonical, ok := knownLeadTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return canonical
	}
	return tag
}
