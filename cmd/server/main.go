package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"curiocart/internal/config"
	"curiocart/internal/database"
	"curiocart/internal/handlers"
	"curiocart/internal/logger"
	"curiocart/internal/middleware"
	"curiocart/internal/repositories"
	"curiocart/internal/server"
	"curiocart/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log := logger.Setup(cfg.Server.Env)

	// No database, no storefront: refuse to start rather than serve pages
	// that can only fail.
	db, err := database.NewConnection(database.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Warn("database disconnect failed", "error", err)
		}
	}()
	log.Info("database connection established", "database", cfg.Mongo.Database)

	// Session cookie carries only the opaque session ID.
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, log)

	// Repositories
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	// Services
	storage := services.NewStorageService(cfg, log)
	imageService := services.NewImageService(storage)
	catalogService := services.NewCatalogService(log, productRepo, imageService)
	reviewService := services.NewReviewService(log, reviewRepo)
	blogService := services.NewBlogService(log, blogRepo)
	cartStore := services.NewCartStore()

	credStore, err := services.NewConfigCredentialStore(cfg.Admin.Users)
	if err != nil {
		log.Error("failed to build credential store", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(log, credStore)

	// Handlers
	h := server.Handlers{
		Public:  handlers.NewPublicHandler(),
		Catalog: handlers.NewCatalogHandler(log, catalogService, cartStore, cfg.Upload.MaxSize),
		Cart:    handlers.NewCartHandler(log, catalogService, cartStore),
		Reviews: handlers.NewReviewHandler(log, reviewService),
		Blog:    handlers.NewBlogHandler(log, blogService),
		Auth:    handlers.NewAuthHandler(log, authService, sessionStore),
	}

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	router := server.NewRouter(log, sessionMiddleware, loginLimiter, h, cfg.Upload.Dir)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
