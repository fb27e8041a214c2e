package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/reach-workshop/backend/internal/api/http"
	"github.com/reach-workshop/backend/internal/auth/google"
	"github.com/reach-workshop/backend/internal/cache"
	"github.com/reach-workshop/backend/internal/config"
	"github.com/reach-workshop/backend/internal/db"
	"github.com/reach-workshop/backend/internal/queue"
	"github.com/reach-workshop/backend/internal/queue/asynqserver"
	"github.com/reach-workshop/backend/internal/queue/client"
	"github.com/reach-workshop/backend/internal/repository"
	"github.com/reach-workshop/backend/internal/server"
	"github.com/reach-workshop/backend/internal/service"
	"github.com/reach-workshop/backend/internal/worker"
	"github.com/reach-workshop/backend/pkg/auth"
	"github.com/reach-workshop/backend/pkg/email/smtp"
	"github.com/reach-workshop/backend/pkg/logger"
	"github.com/reach-workshop/backend/pkg/pdf"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.Init(cfg.Env)

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err = dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("redis connection done")

	emailSender, err := smtp.NewSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	googleVerifier, err := google.NewVerifier(context.Background(), cfg.Auth.GoogleAudience)
	if err != nil {
		logger.Error("google verifier creation err", zap.Error(err))
		return
	}

	// Task queue client for background notifications
	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer client.SetClient(asynqClient)()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:   cfg,
		Repos:    repos,
		Notifier: queue.NewNotifier(),
		Renderer: pdf.NewGenerator(),
		Redis:    redisClient,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, googleVerifier, cfg)

	// Background workers consuming the notification queue
	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	queueSrv, mux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueSrv.Run(mux); err != nil {
			logger.Error("asynq server stopped", zap.Error(err))
		}
	}()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	queueSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
