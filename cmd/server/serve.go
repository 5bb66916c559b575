package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/lexbridge/legal-assistant/docs"
	"github.com/lexbridge/legal-assistant/internal/api"
	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/service"
	"github.com/lexbridge/legal-assistant/internal/infrastructure/config"
	mongodb "github.com/lexbridge/legal-assistant/internal/infrastructure/db/mongo"
	redisdb "github.com/lexbridge/legal-assistant/internal/infrastructure/db/redis"
	"github.com/lexbridge/legal-assistant/internal/infrastructure/http/handlers"
	"github.com/lexbridge/legal-assistant/internal/infrastructure/llm"
	"github.com/lexbridge/legal-assistant/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var noDocs bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), !noDocs)
		},
	}
	cmd.Flags().BoolVar(&noDocs, "no-docs", false, "do not serve the OpenAPI UI under /swagger")
	return cmd
}

func runServe(parent context.Context, docs bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "legal-assistant",
		Version: version,
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	translations := mongodb.NewTranslationRepository(db)
	memorandums := mongodb.NewMemorandumRepository(db)
	auditLogs := mongodb.NewAuditRepository(db)
	settings := mongodb.NewSettingsRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, translations, memorandums, auditLogs); err != nil {
		return err
	}

	gateway, err := llm.New(ctx, llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger.Component("llm"))
	if err != nil {
		return err
	}
	if !gateway.Configured() {
		log.Warn().Msg("LLM_API_KEY is not set, translation and drafting will answer 503")
	}

	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	auditor := service.NewAuditService(auditLogs, logger.Component("audit"))

	e := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(users, sessions, auditor, logger.Component("auth")),
		Translations: service.NewTranslationService(translations, gateway, auditor, logger.Component("translation")),
		Memorandums:  service.NewMemorandumService(memorandums, gateway, auditor, logger.Component("memorandum")),
		Settings:     service.NewSettingsService(settings, auditor, logger.Component("settings")),
		Admin:        service.NewAdminService(users, auditLogs, auditor, logger.Component("admin")),
		Stats:        service.NewStatsService(translations, memorandums),
		Sessions:     sessions,
		Codec: session.NewCodec(session.Options{
			CookieName: cfg.Session.CookieName,
			Secret:     cfg.Session.Secret,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.IsProduction(),
			CrossSite:  cfg.CORSOrigin != "",
		}),
		Log:           log,
		CORSOrigin:    cfg.CORSOrigin,
		EnableMetrics: true,
		EnableDocs:    docs,
		Readiness: map[string]handlers.Pinger{
			"mongodb": mongodb.Pinger(mongoClient),
			"redis":   redisdb.Pinger(rdb),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
