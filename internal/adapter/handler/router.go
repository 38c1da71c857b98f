package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-reporter/errors"
	"github.com/johnquangdev/meeting-reporter/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-reporter/pkg/config"

	_ "github.com/johnquangdev/meeting-reporter/docs"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	model         string
	reportHandler *Report
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, model string, reportHandler *Report) *Router {
	return &Router{
		cfg:           cfg,
		model:         model,
		reportHandler: reportHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupReportRoutes(v1)

	e.RouteNotFound("/*", rt.routeNotFound)
}

// setupReportRoutes configures report routes
func (rt *Router) setupReportRoutes(g *echo.Group) {
	reportGroup := g.Group("/reports")

	if rt.reportHandler != nil {
		reportGroup.POST("", rt.reportHandler.CreateReport)
		reportGroup.POST("/upload", rt.reportHandler.UploadReport)
	} else {
		reportGroup.POST("", rt.notImplemented)
		reportGroup.POST("/upload", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// routeNotFound answers unknown paths with the standard error envelope
func (rt *Router) routeNotFound(c echo.Context) error {
	return HandleError(nil, c, errors.ErrNotFound("route").WithDetail("path", c.Request().URL.Path))
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok", Model: rt.model}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Provider = rt.cfg.LLM.Provider
	}
	return c.JSON(http.StatusOK, resp)
}
