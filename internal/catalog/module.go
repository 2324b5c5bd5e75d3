// Package catalog provides the product catalog bounded context module.
package catalog

import (
	"tcmshop_backend/internal/catalog/handler"
	"tcmshop_backend/internal/catalog/repository"
	"tcmshop_backend/internal/catalog/service"
	apphttp "tcmshop_backend/internal/http"
	"tcmshop_backend/platform/logger"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module.
func NewModule(log *logger.Logger) *Module {
	repo := repository.New()
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/catalog/products", m.handler.ListProducts)
	ctx.V1.GET("/catalog/products/:name", m.handler.GetProductByName)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
