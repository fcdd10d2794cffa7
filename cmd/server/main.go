package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/castingdesk/casting-api/internal/api"
	mongoinfra "github.com/castingdesk/casting-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/castingdesk/casting-api/internal/infrastructure/db/redis"
	"github.com/castingdesk/casting-api/internal/infrastructure/identity"
	"github.com/castingdesk/casting-api/internal/infrastructure/mail"
	"github.com/castingdesk/casting-api/internal/infrastructure/queue"
	"github.com/castingdesk/casting-api/internal/pkg/config"
	"github.com/castingdesk/casting-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Absent .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongoinfra.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	auditionRepo := mongoinfra.NewAuditionRepository(db)
	if err := auditionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("audition index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     from,
	})
	dispatcher := queue.NewMailDispatcher(mailer, cfg.MailWorkers, log)
	dispatcher.Start(ctx)

	google := identity.NewGoogleResolver(cfg.GoogleClientID)

	e := api.NewRouter(cfg, db, rdb, dispatcher, google, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	dispatcher.Wait()
	log.Info().Msg("server stopped")
}
