package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"hostel-manager-backend/config"
	"hostel-manager-backend/internal/api"
	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/db"
	"hostel-manager-backend/internal/mail"
	"hostel-manager-backend/internal/reminder"
	"hostel-manager-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "hosteld ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatalf("auth.jwt_secret must be configured")
	}

	gormDB, err := db.Init(&cfg.Database, &cfg.Auth)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	tokens := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		smtpMailer, err := mail.NewSMTPMailer(&cfg.SMTP)
		if err != nil {
			logger.Fatalf("failed to initialize mailer: %v", err)
		}
		mailer = smtpMailer
	} else {
		logger.Println("smtp.host not configured, password recovery mail disabled")
	}

	var webpushOptions *webpush.Options
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
	}

	if cfg.Reminder.Enabled && webpushOptions != nil {
		pool := reminder.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		scheduler := reminder.NewScheduler(&cfg.Reminder, gormDB, pool)
		go scheduler.Run(ctx)
	} else {
		logger.Println("rent reminders disabled (reminder.enabled off or VAPID keys missing)")
	}

	router := api.NewRouter(appStore, cfg, tokens, mailer, webpushOptions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
