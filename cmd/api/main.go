package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tcmshop_backend/internal/catalog"
	"tcmshop_backend/internal/chat"
	"tcmshop_backend/internal/email"
	"tcmshop_backend/platform/events"
	apphttp "tcmshop_backend/internal/http"
	"tcmshop_backend/internal/http/router"
	"tcmshop_backend/internal/leads"
	"tcmshop_backend/internal/notification"
	"tcmshop_backend/platform/config"
	"tcmshop_backend/platform/logger"
	"tcmshop_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender := email.NewSender(cfg, cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules
	// ========================================================================

	catalogModule := catalog.NewModule(log)

	chatModule := chat.NewModule(catalogModule.Service().Names(), catalogModule.Service(), cfg, val, log)
	chatModule.RegisterHandlers(eventBus)
	chatModule.StartJanitor(ctx)

	notifier := notification.New(sender, cfg, log)

	leadsModule := leads.NewModule(cfg, notifier, eventBus, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			catalogModule,
			chatModule,
			leadsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
