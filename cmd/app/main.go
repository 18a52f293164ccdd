package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/profile-service/internal/api/http"
	"github.com/vibe-gaming/profile-service/internal/cache"
	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/db"
	"github.com/vibe-gaming/profile-service/internal/queue/asynqserver"
	queueClient "github.com/vibe-gaming/profile-service/internal/queue/client"
	"github.com/vibe-gaming/profile-service/internal/repository"
	"github.com/vibe-gaming/profile-service/internal/server"
	"github.com/vibe-gaming/profile-service/internal/service"
	"github.com/vibe-gaming/profile-service/internal/worker"
	"github.com/vibe-gaming/profile-service/pkg/email/smtp"
	"github.com/vibe-gaming/profile-service/pkg/logger"
)

const (
	migrationTimeout = 30 * time.Second
	shutdownTimeout  = 5 * time.Second
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)

	appLogger.Info("starting profile service")
	appLogger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := run(ctx, cfg, appLogger)
	stop()

	if err != nil {
		appLogger.Error("app stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	appLogger.Info("app stopped")
	_ = logger.Sync()
}

// run starts every component and blocks until ctx is done or the HTTP server
// fails. Startup failures are returned after already opened resources are closed.
func run(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) error {
	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		return errors.Wrap(err, "mysql connect problem")
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
		err = db.Migrate(migrateCtx, dbMySQL)
		cancel()
		if err != nil {
			return errors.Wrap(err, "mysql migration failed")
		}
		appLogger.Info("mysql migrations applied")
	}

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		if cfg.Email.Enabled {
			return errors.Wrap(err, "smtp sender creation failed")
		}
		appLogger.Warn("smtp sender is not configured", zap.Error(err))
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	repos := repository.NewRepositories(dbMySQL)
	healthChecks := map[string]apiHttp.HealthCheck{
		"mysql": repos.UserProfiles.Ping,
	}

	// Invitation queue
	deps := service.Deps{
		Logger:      appLogger,
		Config:      cfg,
		Repos:       repos,
		Invitations: workers.InvitationSender,
	}
	if cfg.Email.Enabled && cfg.Email.QueueEnabled {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			return errors.Wrap(err, "redis connect problem")
		}
		defer redisClient.Close()
		healthChecks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }

		producer := queueClient.New(cfg.Cache)
		defer producer.Close()
		deps.Enqueuer = producer

		queueServer, mux := asynqserver.New(cfg.Cache, workers)
		if err := queueServer.Start(mux); err != nil {
			return errors.Wrap(err, "queue server start failed")
		}
		defer queueServer.Shutdown()
		appLogger.Info("queue server started")
	}

	// Services & API Handlers
	services := service.NewServices(deps)
	handlers := apiHttp.NewHandlers(services, healthChecks)

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Run()
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "error occurred while running http server")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to stop server")
	}

	return nil
}
