package main

import (
	"context"   // Context for Redis operations and shutdown
	"errors"    // Server close classification
	"net/http"  // HTTP server
	"os/signal" // Graceful shutdown signals
	"syscall"   // SIGTERM
	"time"      // Shutdown grace period

	"todo_service/internal/api"        // Custom package for API handlers
	"todo_service/internal/cache"      // Custom package for the cache layer
	"todo_service/internal/config"     // Custom package for configuration
	"todo_service/internal/db"         // Custom package for the database
	"todo_service/internal/middleware" // Custom package for middleware
	"todo_service/internal/secrets"    // Custom package for secrets overrides
	"todo_service/internal/service"    // Custom package for business services
	"todo_service/internal/store"      // Custom package for persistence
	"todo_service/internal/token"      // Custom package for JWT tokens

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Override static configuration with AWS Secrets Manager values.
	// Production must not come up on the static defaults.
	if err := secrets.Override(ctx, cfg); err != nil {
		if cfg.IsProd() {
			logrus.Fatalf("failed to load secrets: %v", err)
		}
		logrus.Warnf("secrets unavailable, using default configuration values: %v", err)
	}

	// Connect to the database through the bounded pool
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Create tables, constraints and indexes if they don't exist
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client, one shared connection for the process lifetime
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the services with their single process-wide collaborators
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiration)
	authSvc := service.NewAuthService(store.NewUserStore(gdb), tokens)
	todoSvc := service.NewTodoService(store.NewTodoStore(gdb), cache.New(redisClient, cfg.CacheTTL))

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health check endpoint
	r.GET("/health", api.HealthHandler())

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/register", api.RegisterHandler(authSvc)) // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(authSvc))       // Login endpoint

	// Todo routes (protected by JWT)
	todoGroup := r.Group("/todos")
	todoGroup.Use(middleware.JWTAuthMiddleware(tokens))            // Require a valid bearer token
	todoGroup.POST("", api.CreateTodoHandler(todoSvc))             // Create todo endpoint
	todoGroup.GET("", api.ListTodosHandler(todoSvc))               // List todos endpoint
	todoGroup.GET("/:id", api.GetTodoHandler(todoSvc))             // Get todo endpoint
	todoGroup.PUT("/:id", api.UpdateTodoHandler(todoSvc))          // Update todo endpoint
	todoGroup.DELETE("/:id", api.DeleteTodoHandler(todoSvc))       // Delete todo endpoint
	todoGroup.PATCH("/:id/toggle", api.ToggleTodoHandler(todoSvc)) // Toggle todo endpoint

	// Unmatched routes get the same {message} error body
	r.NoRoute(api.NotFoundHandler())

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r}

	go func() {
		logrus.Infof("Server started in %s mode on port %s", cfg.AppEnv, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done() // Wait for SIGINT/SIGTERM
	logrus.Info("Shutdown signal received: closing HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server shutdown failed: %v", err)
	}
	// Tear down the shared cache session and the connection pool
	if err := redisClient.Close(); err != nil {
		logrus.Errorf("failed to close Redis client: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("failed to close database pool: %v", err)
		}
	}
	logrus.Info("Server stopped")
}
