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

type BuyerService struct {
	users restclient.UserRepositoryInterface
}

func ProvideBuyerService(users restclient.UserRepositoryInterface) *BuyerService {
	return &BuyerService{users: users}
}

type buyerRecord struct {
	models.UserModel
	IsActive bool `json:"isActive"`
}

// Admin only API
func (s *BuyerService) FetchBuyers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}

	result, err := s.users.Search(c.Request().Context(), c.QueryParam("search"), "buyer", page, limit)
	if err != nil {
		logger.Error("Error fetching buyers", zap.Error(err))
		return renderError(c, err)
	}

	records := make([]buyerRecord, len(result.Data))
	for i, user := range result.Data {
		records[i] = buyerRecord{UserModel: user, IsActive: user.MetaValue("isActive") == "true"}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  records,
		"total": result.Total,
	})
}

type updateBuyerRequest struct {
	User       models.UserModel `json:"user"`
	IsVerified bool             `json:"isVerified"`
	IsActive   bool             `json:"isActive"`
}

// Admin only API. Only the verification flag and the meta-array active flag
// are writable from this screen; every other meta entry is passed through
// untouched.
func (s *BuyerService) UpdateBuyer(c echo.Context) error {
	userId := c.Param("id")

	req := &updateBuyerRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid buyer payload."})
	}

	user := req.User
	user.IsVerified = req.IsVerified
	user.SetMetaValue("isActive", strconv.FormatBool(req.IsActive))

	saved, err := s.users.UpdateBuyer(c.Request().Context(), userId, &user)
	if err != nil {
		logger.Error("Error updating buyer", zap.String("userId", userId), zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, buyerRecord{UserModel: *saved, IsActive: saved.MetaValue("isActive") == "true"})
}

// Admin only API. Nearby farmer/buyer lookup scoped by location.
func (s *BuyerService) FetchNearby(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}

	userType := c.QueryParam("userType")
	if userType == "" {
		userType = "farmer"
	}

	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)
	address := models.Address{
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Taluk:    c.QueryParam("taluk"),
	}

	result, err := s.users.Nearby(c.Request().Context(), userType, address, radius, page, limit)
	if err != nil {
		logger.Error("Error fetching nearby users", zap.Error(err))
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  result.Data,
		"total": result.Total,
	})
}
