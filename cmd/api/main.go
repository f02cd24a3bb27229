package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/itsquarehub/helpdesk-service/internal/api/http"
	"github.com/itsquarehub/helpdesk-service/internal/api/http/handlers"
	"github.com/itsquarehub/helpdesk-service/internal/auth"
	"github.com/itsquarehub/helpdesk-service/internal/config"
	"github.com/itsquarehub/helpdesk-service/internal/events"
	"github.com/itsquarehub/helpdesk-service/internal/mail"
	"github.com/itsquarehub/helpdesk-service/internal/observability"
	"github.com/itsquarehub/helpdesk-service/internal/persistence"
	"github.com/itsquarehub/helpdesk-service/internal/repository"
	"github.com/itsquarehub/helpdesk-service/internal/service"
	"github.com/itsquarehub/helpdesk-service/internal/storage"
	"github.com/itsquarehub/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	uploads, err := storage.NewUploadStore(cfg.Uploads, cfg.App.PublicBaseURL)
	if err != nil {
		logger.Fatal("failed to init upload store", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	ticketRepo := repository.NewTicketRepository(pg.PoolHandle())

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		Cache:      redis.ClientHandle(),
		Logger:     logger,
	})
	authService := service.NewAuthService(cfg.Auth)
	notificationService := service.NewNotificationService(dispatcher, mail.NewSMTPMailer(cfg.Mail), logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Uploads.MaxBytes) + 1<<20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService, uploads),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		AuthMiddleware: authMiddleware,
		UploadsDir:     uploads.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
