// Package chat provides the chat assistant bounded context module.
package chat

import (
	"context"
	"time"

	"tcmshop_backend/internal/chat/domain"
	"tcmshop_backend/internal/chat/handler"
	"tcmshop_backend/internal/chat/service"
	"tcmshop_backend/internal/chat/session"
	"tcmshop_backend/internal/events"
	apphttp "tcmshop_backend/internal/http"
	"tcmshop_backend/platform/config"
	"tcmshop_backend/platform/logger"
	"tcmshop_backend/platform/validator"
)

// ChatConfig combines the config interfaces the chat module needs.
type ChatConfig interface {
	config.BrandConfig
	config.ChatConfig
}

// Module is the chat bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	store   *session.Store
}

// NewModule creates and initializes the chat module. productNames seeds the
// classifier; catalog fulfills product-intent queries.
func NewModule(productNames []string, catalog service.CatalogLookup, cfg ChatConfig, val *validator.Validator, log *logger.Logger) *Module {
	store := session.NewStore(cfg.GetSessionTTL())
	classifier := domain.NewClassifier(productNames)
	svc := service.New(classifier, catalog, store, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// StartJanitor prunes idle sessions until ctx is cancelled.
func (m *Module) StartJanitor(ctx context.Context) {
	m.store.StartJanitor(ctx, 5*time.Minute)
}

// RegisterRoutes mounts chat routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/chat")
	group.GET("/examples", m.handler.ListExamples)
	group.POST("/sessions", m.handler.CreateSession)
	group.POST("/sessions/:id/messages", ctx.SubmitRateLimiter.Middleware(), m.handler.SendMessage)
	group.GET("/sessions/:id/messages", m.handler.GetTranscript)
	group.DELETE("/sessions/:id", m.handler.ResetSession)
}

// RegisterHandlers subscribes the chat module to domain events so lead
// submissions can surface a confirmation turn in the originating session.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), m.service)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
