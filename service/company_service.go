package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kotlang/opsGo/logger"
	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

type CompanyService struct {
	companies restclient.CompanyRepositoryInterface
	calls     restclient.CallRepositoryInterface
	leads     restclient.LeadRepositoryInterface
	sessions  *cache.Cache
}

func ProvideCompanyService(companies restclient.CompanyRepositoryInterface, calls restclient.CallRepositoryInterface, leads restclient.LeadRepositoryInterface) *CompanyService {
	return &CompanyService{
		companies: companies,
		calls:     calls,
		leads:     leads,
		sessions:  cache.New(30*time.Minute, 10*time.Minute),
	}
}

type companyRecord struct {
	models.CompanyModel
	DisplayName string `json:"displayName"`
}

// Admin only API
func (s *CompanyService) FetchCompanies(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	result, err := s.companies.Fetch(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		logger.Error("Error fetching companies", zap.Error(err))
		return renderError(c, err)
	}

	records := make([]companyRecord, len(result.Data))
	for i, company := range result.Data {
		records[i] = companyRecord{CompanyModel: company, DisplayName: company.DisplayName()}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  records,
		"total": result.Total,
	})
}

// Admin only API. The call history fetch rides on the request context, so an
// abandoned detail view cancels it.
func (s *CompanyService) GetCompany(c echo.Context) error {
	companyId := c.Param("id")
	ctx := c.Request().Context()

	company, err := s.companies.FindOneById(ctx, companyId)
	if err != nil {
		logger.Error("Error fetching company", zap.String("companyId", companyId), zap.Error(err))
		return renderError(c, err)
	}

	calls, err := s.calls.FindByCompanyId(ctx, companyId)
	if err != nil {
		// degrade to an empty call list; the detail screen still renders
		logger.Error("Error fetching company calls", zap.String("companyId", companyId), zap.Error(err))
		calls = nil
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"company":     companyRecord{CompanyModel: *company, DisplayName: company.DisplayName()},
		"callRecords": calls,
	})
}

type associationResponse struct {
	SessionId  string             `json:"sessionId"`
	Associated []models.LeadModel `json:"associated"`
	Selected   []models.LeadModel `json:"selected"`
	Available  []models.LeadModel `json:"available,omitempty"`
	Total      int64              `json:"total,omitempty"`
}

// Admin only API. Opens an association multi-select for the company and runs
// the eager full-listing scan for already-linked leads.
func (s *CompanyService) StartAssociation(c echo.Context) error {
	companyId := c.Param("id")

	session := NewAssociationSession(s.leads, companyId)
	if err := session.Load(c.Request().Context()); err != nil {
		logger.Error("Error scanning associated leads", zap.String("companyId", companyId), zap.Error(err))
		return renderError(c, err)
	}

	sessionId := uuid.New().String()
	s.sessions.Set(sessionId, session, cache.DefaultExpiration)

	return c.JSON(http.StatusCreated, associationResponse{
		SessionId:  sessionId,
		Associated: session.Associated(),
		Selected:   session.Selected(),
	})
}

func (s *CompanyService) GetAssociation(c echo.Context) error {
	session, ok := s.association(c.Param("sid"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown association session."})
	}

	return c.JSON(http.StatusOK, associationResponse{
		SessionId:  c.Param("sid"),
		Associated: session.Associated(),
		Selected:   session.Selected(),
	})
}

// Admin only API. One picker page: backend page minus already-associated and
// already-selected leads.
func (s *CompanyService) SearchAssociation(c echo.Context) error {
	session, ok := s.association(c.Param("sid"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown association session."})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}

	available, total, err := session.Search(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		logger.Error("Error searching leads", zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, associationResponse{
		SessionId:  c.Param("sid"),
		Associated: session.Associated(),
		Selected:   session.Selected(),
		Available:  available,
		Total:      total,
	})
}

type selectLeadsRequest struct {
	Mode  string             `json:"mode"` // toggle or page
	Leads []models.LeadModel `json:"leads"`
}

func (s *CompanyService) SelectAssociation(c echo.Context) error {
	session, ok := s.association(c.Param("sid"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown association session."})
	}

	req := &selectLeadsRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid selection payload."})
	}

	switch req.Mode {
	case "page":
		session.SelectPage(req.Leads)
	default:
		for _, lead := range req.Leads {
			session.Toggle(lead)
		}
	}

	return c.JSON(http.StatusOK, associationResponse{
		SessionId:  c.Param("sid"),
		Associated: session.Associated(),
		Selected:   session.Selected(),
	})
}

type submitAssociationRequest struct {
	CropName string `json:"cropName"`
}

// Admin only API. With nothing net-new selected the backend is not called.
func (s *CompanyService) SubmitAssociation(c echo.Context) error {
	session, ok := s.association(c.Param("sid"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown association session."})
	}

	req := &submitAssociationRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid submit payload."})
	}

	response, err := session.Submit(c.Request().Context(), req.CropName)
	if err == ErrNothingToUpdate {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		logger.Error("Error associating leads", zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"statuses":   response.Statuses,
		"associated": session.Associated(),
		"selected":   session.Selected(),
	})
}

type removeAssociationRequest struct {
	UserId string `json:"userId"`
}

func (s *CompanyService) RemoveAssociation(c echo.Context) error {
	session, ok := s.association(c.Param("sid"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown association session."})
	}

	req := &removeAssociationRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid remove payload."})
	}

	if err := session.Remove(c.Request().Context(), req.UserId); err != nil {
		logger.Error("Error removing lead from company", zap.String("userId", req.UserId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, associationResponse{
		SessionId:  c.Param("sid"),
		Associated: session.Associated(),
		Selected:   session.Selected(),
	})
}

func (s *CompanyService) association(sessionId string) (*AssociationSession, bool) {
	value, found := s.sessions.Get(sessionId)
	if !found {
		return nil, false
	}

	session := value.(*AssociationSession)
	s.sessions.Set(sessionId, session, cache.DefaultExpiration)
	return session, true
}
