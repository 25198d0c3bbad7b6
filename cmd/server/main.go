package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appcrm "github.com/crm/backend/internal/application/crm"
	appidentity "github.com/crm/backend/internal/application/identity"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/persistence"
	"github.com/crm/backend/internal/infrastructure/telemetry"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	db, err := persistence.NewDatabase(cfg.Database, cfg.Logger, cfg.Telemetry, log)
	if err != nil {
		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, token revocation disabled", zap.Error(err))
	}
	defer redisClient.Close()

	userRepo := persistence.NewGormUserRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	leadRepo := persistence.NewGormLeadRepository(db)
	txManager := persistence.NewGormTransactionManager(db)

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
	blacklist := auth.NewTokenBlacklist(redisClient)

	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, log)
	customerService := appcrm.NewCustomerService(customerRepo, leadRepo, txManager, log)
	leadService := appcrm.NewLeadService(leadRepo, customerRepo, log)

	engine := router.New(router.Config{
		Mode:        cfg.Server.Mode,
		ServiceName: cfg.Telemetry.ServiceName,
		JWTService:  jwtService,
		Blacklist:   blacklist,
		Logger:      log,
		Handlers: router.Handlers{
			Auth:     handler.NewAuthHandler(authService),
			Customer: handler.NewCustomerHandler(customerService),
			Lead:     handler.NewLeadHandler(leadService),
		},
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
