package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"steakhouse/storefront/internal/config"
	"steakhouse/storefront/internal/handler"
	"steakhouse/storefront/internal/model"
	"steakhouse/storefront/internal/repository"
	"steakhouse/storefront/internal/securestore"
	"steakhouse/storefront/internal/service"
	"steakhouse/storefront/pkg/crypto"
	jwtpkg "steakhouse/storefront/pkg/jwt"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize the session backend (memory, Redis or Postgres)
	backend, closeBackend, err := newBackend(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init session backend", zap.Error(err))
	}
	defer closeBackend()

	// 4. Initialize the secure session store
	codec, err := newCodec(cfg.Store)
	if err != nil {
		logger.Fatal("failed to init store codec", zap.Error(err))
	}
	store := securestore.New(backend, logger.Named("securestore"),
		securestore.WithTTL(cfg.Store.TTL),
		securestore.WithCodec(codec),
	)
	logger.Info("secure store ready",
		zap.String("backend", cfg.Store.Backend),
		zap.String("codec", cfg.Store.Codec),
		zap.Duration("ttl", store.TTL()),
	)

	// 5. Initialize session tokens
	if cfg.Session.SigningKey == "" {
		logger.Fatal("session.signing_key is required")
	}
	jwtManager := jwtpkg.NewManager(cfg.Session.SigningKey, cfg.Session.Issuer, cfg.Session.TTL)

	// 6. Initialize services
	orderClient, err := service.NewOrderClient(cfg.OrderAPI, &http.Client{}, logger.Named("orders"))
	if err != nil {
		logger.Fatal("failed to init order client", zap.Error(err))
	}
	menuService := service.NewMenuService(model.Menu)
	cartService := service.NewCartService(store, menuService, logger.Named("cart"))
	checkoutService := service.NewCheckoutService(cartService, orderClient, logger.Named("checkout"))

	// 7. Initialize handlers and router
	router := handler.SetupRouter(cfg, logger, jwtManager,
		handler.NewMenuHandler(menuService),
		handler.NewCartHandler(cartService),
		handler.NewCheckoutHandler(checkoutService),
	)

	// 8. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 9. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("server exited gracefully")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func newBackend(cfg *config.Config, logger *zap.Logger) (repository.Backend, func(), error) {
	switch cfg.Store.Backend {
	case "memory":
		logger.Info("using in-memory session backend")
		return repository.NewMemoryBackend(cfg.Store.MaxValueSize), func() {}, nil
	case "redis":
		client, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using Redis session backend")
		return repository.NewRedisBackend(client, cfg.Store.KeyPrefix), func() { _ = client.Close() }, nil
	case "postgres":
		db, err := config.NewPostgresDB(cfg.Database.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.Postgres.AutoMigrate {
			if err := model.AutoMigrate(db); err != nil {
				return nil, nil, fmt.Errorf("auto-migrate: %w", err)
			}
			logger.Info("database migration completed")
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		logger.Info("using Postgres session backend")
		return repository.NewPGBackend(db), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newCodec(cfg config.StoreConfig) (securestore.Codec, error) {
	switch cfg.Codec {
	case "", "obfuscate":
		return crypto.Obfuscator{}, nil
	case "sealed":
		key, err := base64.StdEncoding.DecodeString(cfg.SealKey)
		if err != nil {
			return nil, fmt.Errorf("decode seal key: %w", err)
		}
		sealer, err := crypto.NewSealer(key)
		if err != nil {
			return nil, err
		}
		return sealer, nil
	default:
		return nil, fmt.Errorf("unknown store codec %q", cfg.Codec)
	}
}
