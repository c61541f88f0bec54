package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/blogai/blogai/backend/go-services/handlers"
	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"github.com/blogai/blogai/backend/go-services/internal/blog/handler"
	"github.com/blogai/blogai/backend/go-services/internal/blog/repository"
	"github.com/blogai/blogai/backend/go-services/internal/blog/service"
	"github.com/blogai/blogai/backend/go-services/internal/config"
	"github.com/blogai/blogai/backend/go-services/internal/database"
	"github.com/blogai/blogai/backend/go-services/internal/generator"
	"github.com/blogai/blogai/backend/go-services/pkg/logger"
	"github.com/blogai/blogai/backend/go-services/pkg/metrics"
	"github.com/blogai/blogai/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("startup: LOG_LEVEL=%s environment=%s", logger.LevelString(), cfg.Server.Environment)

	if cfg.Server.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One Mongo client for the life of the process.
	var repo repository.Repository
	var readiness handlers.Pinger
	store, err := database.Open(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Collection, cfg.MongoDB.Timeout)
	if err != nil {
		if !cfg.MongoDB.AllowMemoryStore {
			logger.Fatalf("cannot connect to MongoDB: %v", err)
		}
		logger.Warnf("cannot connect to MongoDB (%v); ALLOW_MEMORY_STORE set, using memory-backed repo", err)
		mem := repository.NewMemoryRepo()
		repo, readiness = mem, mem
	} else {
		defer func() { _ = store.Close(context.Background()) }()
		repo, readiness = repository.NewMongoRepo(store.Collection()), store
		logger.Infof("connected to MongoDB, using %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	}

	model, err := generator.NewOllamaModel(cfg.Ollama.Host, cfg.Ollama.Model, nil)
	if err != nil {
		logger.Fatalf("failed to configure model client: %v", err)
	}
	gen, err := generator.New(model)
	if err != nil {
		logger.Fatalf("failed to build blog generator: %v", err)
	}
	logger.Infof("blog generator bound to %s at %s", model.Name(), cfg.Ollama.Host)

	svc := service.New(gen, blog.NewValidator(), repo)

	r := gin.New()
	r.Use(logger.GinMiddleware(), gin.Recovery())

	handler.RegisterBlogRoutes(r, svc, rateLimiter(ctx, cfg)...)
	handlers.RegisterHealth(r, readiness, startTime)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting blog service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// rateLimiter builds the optional limiter for /generate_blog. Redis is used
// when configured and reachable, otherwise an in-memory token bucket.
func rateLimiter(ctx context.Context, cfg *config.Config) []gin.HandlerFunc {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	if rl.UseRedis && cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis ping failed (%s:%s): %v; using in-memory rate limiter", cfg.Redis.Host, cfg.Redis.Port, err)
			_ = client.Close()
			return []gin.HandlerFunc{middleware.RateLimitMiddleware(rl.RPS, rl.Burst)}
		}
		logger.Infof("rate limiter: redis %s:%s, %.2f rps burst %d", cfg.Redis.Host, cfg.Redis.Port, rl.RPS, rl.Burst)
		win := time.Duration(rl.WindowSeconds) * time.Second
		return []gin.HandlerFunc{middleware.RedisRateLimitMiddleware(client, rl.RPS, rl.Burst, win)}
	}
	logger.Infof("rate limiter: memory, %.2f rps burst %d", rl.RPS, rl.Burst)
	return []gin.HandlerFunc{middleware.RateLimitMiddleware(rl.RPS, rl.Burst)}
}
