package main

import (
	"MachCatalog/internal/config"
	"MachCatalog/internal/handlers"
	"MachCatalog/internal/mailer"
	"MachCatalog/internal/middleware"
	"MachCatalog/internal/repo"
	"MachCatalog/internal/service"
	"MachCatalog/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// контекст отменяется по SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	imageStore, err := storage.NewS3Store(ctx, storage.S3Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize image store", "error", err)
	}

	smtpMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPUser,
		To:       cfg.ContactRecipient,
	})

	userRepo := repo.NewUserRepository(gormDB)
	machineRepo := repo.NewMachineRepository(gormDB)
	imageRepo := repo.NewImageRepository(gormDB)

	authService := service.NewAuthService(userRepo, cfg.AuthSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(machineRepo, imageRepo, imageStore, sugar)
	imageService := service.NewImageService(machineRepo, imageRepo, imageStore, sugar)
	contactService := service.NewContactService(smtpMailer, sugar)

	h := handlers.NewHandler(authService, catalogService, imageService, contactService, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddr,
	)

	srv := &http.Server{Addr: cfg.RunAddr, Handler: h.Router}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}

	sugar.Infow("Server stopped")
}
