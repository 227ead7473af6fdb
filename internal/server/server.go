package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vendormax/apiserver/config"
	"github.com/vendormax/apiserver/internal/db"
	"github.com/vendormax/apiserver/internal/handlers"
	"github.com/vendormax/apiserver/internal/notify"
	"github.com/vendormax/apiserver/internal/services"
	"github.com/vendormax/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	notifier   *notify.Notifier
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	backend, err := notify.OpenBackend(ctx, cfg.Notify)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	notifier := notify.New(backend, cfg.Notify.Queue)

	userRepo := store.NewUserRepository(dbConn)
	vendorRepo := store.NewVendorRepository(dbConn)
	categoryRepo := store.NewCategoryRepository(dbConn)
	productRepo := store.NewProductRepository(dbConn)
	resetTokenRepo := store.NewResetTokenRepository(dbConn)

	userService := services.NewUserService(userRepo)
	vendorService := services.NewVendorService(vendorRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	dashboardService := services.NewDashboardService(vendorRepo, categoryRepo, productRepo, userRepo)
	resetService := services.NewPasswordResetService(
		userRepo,
		resetTokenRepo,
		notifier,
		cfg.Reset.BaseURL,
		cfg.Reset.TokenTTL,
	)

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, resetService, jwtSecret)
	})
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, authMiddleware)
	})
	router.Route("/vendors", func(r chi.Router) {
		handlers.VendorRouter(r, vendorService, userService, authMiddleware)
	})
	router.Route("/categories", func(r chi.Router) {
		handlers.CategoryRouter(r, categoryService, userService, authMiddleware)
	})
	router.Route("/products", func(r chi.Router) {
		handlers.ProductRouter(r, productService, userService, authMiddleware)
	})
	router.Route("/dashboard", func(r chi.Router) {
		handlers.DashboardRouter(r, dashboardService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		notifier:   notifier,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.notifier != nil {
		_ = s.notifier.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
