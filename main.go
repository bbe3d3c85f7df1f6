package main

import (
	"net/http"

	"github.com/Kotlang/opsGo/appconfig"
	"github.com/Kotlang/opsGo/interceptors"
	"github.com/Kotlang/opsGo/logger"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()
	config := appconfig.Load()
	inject := NewInject(config)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(interceptors.MetricsInterceptor())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	ops := e.Group("/ops", interceptors.AuthInterceptor())

	ops.GET("/leads", inject.LeadService.FetchLeads)
	ops.GET("/leads/bulk", inject.LeadService.BulkGetLeads)
	ops.POST("/leads", inject.LeadService.CreateLead)
	ops.PATCH("/leads/:id", inject.LeadService.UpdateLead)
	ops.DELETE("/leads/:id", inject.LeadService.DeleteLead)

	ops.GET("/buyers", inject.BuyerService.FetchBuyers)
	ops.GET("/buyers/nearby", inject.BuyerService.FetchNearby)
	ops.PUT("/buyers/:id", inject.BuyerService.UpdateBuyer)

	ops.GET("/companies", inject.CompanyService.FetchCompanies)
	ops.GET("/companies/:id", inject.CompanyService.GetCompany)
	ops.POST("/companies/:id/association", inject.CompanyService.StartAssociation)
	ops.GET("/companies/:id/association/:sid", inject.CompanyService.GetAssociation)
	ops.GET("/companies/:id/association/:sid/search", inject.CompanyService.SearchAssociation)
	ops.POST("/companies/:id/association/:sid/select", inject.CompanyService.SelectAssociation)
	ops.POST("/companies/:id/association/:sid/submit", inject.CompanyService.SubmitAssociation)
	ops.POST("/companies/:id/association/:sid/remove", inject.CompanyService.RemoveAssociation)

	ops.GET("/po", inject.PoService.FetchPOs)
	ops.GET("/po/:id", inject.PoService.GetPO)
	ops.POST("/po", inject.PoService.CreatePO)
	ops.PATCH("/po/:id", inject.PoService.UpdatePO)

	ops.POST("/cascade", inject.LocationService.StartCascade)
	ops.GET("/cascade/:id", inject.LocationService.GetCascade)
	ops.POST("/cascade/:id/select", inject.LocationService.Select)
	ops.POST("/cascade/:id/prefill", inject.LocationService.Prefill)

	ops.POST("/media", inject.MediaService.Upload)
	ops.GET("/tools/whatsapp", inject.ToolsService.WhatsAppLink)
	ops.POST("/tools/event", inject.ToolsService.RegisterEvent)

	logger.Info("Starting ops server", zap.String("port", config.Port))
	if err := e.Start(":" + config.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
