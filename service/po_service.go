package service

import (
	"net/http"
	"strconv"

	"github.com/Kotlang/opsGo/logger"
	"github.com/Kotlang/opsGo/models"
	"github.com/Kotlang/opsGo/restclient"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PoService struct {
	pos restclient.PoRepositoryInterface
}

func ProvidePoService(pos restclient.PoRepositoryInterface) *PoService {
	return &PoService{pos: pos}
}

// Admin only API
func (s *PoService) FetchPOs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}

	result, err := s.pos.Fetch(c.Request().Context(), c.QueryParam("companyId"), page, limit)
	if err != nil {
		logger.Error("Error fetching purchase orders", zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  result.Data,
		"total": result.Total,
	})
}

// Admin only API. The detail view includes the attached EOI records.
func (s *PoService) GetPO(c echo.Context) error {
	poId := c.Param("id")

	po, err := s.pos.FindOneById(c.Request().Context(), poId)
	if err != nil {
		logger.Error("Error fetching purchase order", zap.String("poId", poId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, po)
}

// Admin only API
func (s *PoService) CreatePO(c echo.Context) error {
	po := &models.POModel{}
	if err := c.Bind(po); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid purchase order payload."})
	}

	if err := ValidatePO(po); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	saved, err := s.pos.Create(c.Request().Context(), po)
	if err != nil {
		logger.Error("Error saving purchase order", zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, saved)
}

// Admin only API
func (s *PoService) UpdatePO(c echo.Context) error {
	poId := c.Param("id")

	patch := map[string]interface{}{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid purchase order payload."})
	}

	saved, err := s.pos.Update(c.Request().Context(), poId, patch)
	if err != nil {
		logger.Error("Error saving purchase order", zap.String("poId", poId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, saved)
}
