// Command server runs the identity HTTP API.
//
// @title        Identity API
// @version      1.0.0
// @description  User registration, login, and role-guarded user listing.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/userhub/identity-api/docs"
	"github.com/userhub/identity-api/internal/api"
	"github.com/userhub/identity-api/internal/core/service"
	"github.com/userhub/identity-api/internal/infrastructure/config"
	mongodb "github.com/userhub/identity-api/internal/infrastructure/db/mongo"
	"github.com/userhub/identity-api/pkg/banner"
	"github.com/userhub/identity-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	banner.PrintStdout(cfg.AppName, version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	priv, pub, err := service.LoadKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load JWT key pair")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URL:      cfg.Mongo.URL,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	users := mongodb.NewUserRepository(db)
	tokens := service.NewTokenService(priv, pub, cfg.TokenTTL())
	authService := service.NewAuthService(users, tokens)
	userService := service.NewUserService(users)

	e := api.NewRouter(api.RouterConfig{
		AppName:     cfg.AppName,
		APIPrefix:   cfg.APIPrefix,
		CORSOrigins: cfg.AllowedOrigins(),
		DB:          db,
		Users:       users,
		Tokens:      tokens,
		AuthService: authService,
		UserService: userService,
		Logger:      log,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Str("addr", addr).Str("prefix", cfg.APIPrefix).Msg("starting HTTP server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := mongodb.Disconnect(shutdownCtx, client); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	log.Info().Msg("goodbye")
}
