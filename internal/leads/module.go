// Package leads provides the lead intake bounded context module.
package leads

import (
	"tcmshop_backend/internal/events"
	apphttp "tcmshop_backend/internal/http"
	"tcmshop_backend/internal/leads/handler"
	"tcmshop_backend/internal/leads/ports"
	"tcmshop_backend/internal/leads/repository"
	"tcmshop_backend/internal/leads/service"
	"tcmshop_backend/platform/config"
	"tcmshop_backend/platform/logger"
	"tcmshop_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.LeadsRepository
}

// NewModule creates and initializes the leads module.
func NewModule(cfg config.LeadStoreConfig, notifier ports.LeadNotifier, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.NewCSV(cfg.GetLeadsCSVPath())
	svc := service.New(repo, notifier, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", ctx.SubmitRateLimiter.Middleware(), m.handler.SubmitLead)
	ctx.V1.GET("/leads", m.handler.ListLeads)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
