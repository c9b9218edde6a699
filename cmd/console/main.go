package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/helloviza/frontend-hrms-sub002/internal/access"
	"github.com/helloviza/frontend-hrms-sub002/internal/navigation"
	"github.com/helloviza/frontend-hrms-sub002/internal/session"
	"github.com/helloviza/frontend-hrms-sub002/internal/shared/config"
	"github.com/helloviza/frontend-hrms-sub002/internal/shared/database"
	"github.com/helloviza/frontend-hrms-sub002/internal/shared/metrics"
	secmiddleware "github.com/helloviza/frontend-hrms-sub002/internal/shared/middleware"
)

// App holds all application dependencies
type App struct {
	Config *config.Config
	DB     *database.DB
	Menu   []navigation.Group
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := &App{Config: cfg, Menu: navigation.DefaultMenu()}

	// Menu configuration store (optional - built-in menu without it)
	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("Warning: Database not available: %v\n", err)
		fmt.Println("Serving the built-in menu configuration...")
	} else {
		app.DB = db
		defer db.Close()

		if err := database.Migrate(ctx, db.Pool); err != nil {
			fmt.Printf("Warning: Migration failed: %v\n", err)
		}

		menuRepo := navigation.NewRepository(db.Pool)
		if err := menuRepo.SeedDefault(ctx); err != nil {
			fmt.Printf("Warning: Menu seed failed: %v\n", err)
		}
		if menu, err := menuRepo.LoadMenu(ctx); err != nil {
			fmt.Printf("Warning: Menu load failed: %v\n", err)
		} else if menu != nil {
			app.Menu = menu
			fmt.Println("Menu configuration loaded from database")
		}
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(secmiddleware.SecurityHeaders)
	r.Use(secmiddleware.BodyLimiter)
	r.Use(metrics.Middleware)
	r.Use(corsMiddleware)

	if cfg.RateLimit.Enabled {
		limiter := secmiddleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
	}

	// Health checks (unauthenticated)
	r.Get("/health", healthHandler(app))
	r.Get("/ready", readyHandler(app))
	r.Handle("/metrics", metrics.Handler())

	// API info
	r.Get("/", infoHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(session.Middleware(cfg.Auth))

		authenticated := access.Requirement{Predicate: func(rec access.Record) bool { return rec != nil }}

		r.With(session.Require(authenticated, cfg.Auth.SignInURL)).
			Get("/me", app.meHandler)
		r.With(session.Require(authenticated, cfg.Auth.SignInURL)).
			Get("/me/navigation", app.navigationHandler)

		// Capability-predicate guards
		r.With(session.Require(access.Requirement{Predicate: access.CanCreateUsers}, cfg.Auth.SignInURL)).
			Get("/people", app.peopleHandler)
		r.With(session.Require(access.Requirement{Predicate: access.CanCreateUsers}, cfg.Auth.SignInURL)).
			Post("/people/invite", app.inviteHandler)
		r.With(session.Require(access.Requirement{Predicate: access.CanManagePolicies}, cfg.Auth.SignInURL)).
			Get("/admin/policies", sectionHandler("policies"))
		r.With(session.Require(access.Requirement{Predicate: access.CanManageOrgChart}, cfg.Auth.SignInURL)).
			Get("/admin/org-chart", sectionHandler("org-chart"))
		r.With(session.Require(access.Requirement{Predicate: access.CanManageHolidays}, cfg.Auth.SignInURL)).
			Get("/admin/holidays", sectionHandler("holidays"))

		// Role-whitelist guard
		r.With(session.Require(access.Requirement{AnyToken: access.ApproverTokens}, cfg.Auth.SignInURL)).
			Get("/approvals", sectionHandler("approvals"))
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		fmt.Println("\nShutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
		close(done)
	}()

	fmt.Println("============================================")
	fmt.Println("Workforce Console Access Service")
	fmt.Println("============================================")
	fmt.Printf("Environment: %s\n", cfg.Server.Env)
	fmt.Printf("Server:      http://localhost:%d\n", cfg.Server.Port)
	fmt.Printf("API:         http://localhost:%d/api/v1\n", cfg.Server.Port)
	fmt.Printf("Health:      http://localhost:%d/health\n", cfg.Server.Port)
	fmt.Printf("Sign-in:     %s\n", cfg.Auth.SignInURL)
	fmt.Println("============================================")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}

	<-done
	fmt.Println("Server stopped")
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
