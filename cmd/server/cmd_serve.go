package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"art-auction-backend/docs"
	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/cache"
	"art-auction-backend/internal/config"
	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/server"
	"art-auction-backend/internal/services"
	"art-auction-backend/internal/supabase"
)

var skipMigrations bool

// art-auction serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		return err
	}
	store := supabase.NewRESTStore(supabaseClient)

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		return err
	}

	authService := services.NewAuthService(supabase.NewAuthClient(supabaseClient), store)

	deps := server.Dependencies{
		Config:   cfg,
		Store:    store,
		Auth:     authService,
		Images:   storageClient,
		CacheTTL: cfg.CacheTTL,
	}

	var readCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, reads will go to the database until it recovers", map[string]any{"error": err.Error()})
		}
		readCache = redisCache
		deps.CacheHealth = redisCache
	}
	deps.Cache = readCache

	// Bid placement needs a direct Postgres connection for its row-locking transaction.
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, bid placement is disabled", nil)
	} else {
		if !skipMigrations {
			if err := runMigrations(cfg.DatabaseURL); err != nil {
				logger.Warn("startup migrations failed", map[string]any{"error": err.Error()})
			}
		}

		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to initialize database client, bid placement is disabled", map[string]any{"error": err.Error()})
		} else {
			defer dbClient.Close()
			deps.Bids = bidding.NewService(dbClient, readCache)
			deps.Database = dbClient
		}
	}

	router := server.SetupRouter(deps)
	return run(ctx, ":"+cfg.Port, router)
}

func run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", map[string]any{"addr": addr})
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
