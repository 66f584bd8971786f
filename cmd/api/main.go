package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/Jamaalx/transfabilog-sub001/internal/config"
	"github.com/Jamaalx/transfabilog-sub001/internal/cron"
	"github.com/Jamaalx/transfabilog-sub001/internal/database"
	"github.com/Jamaalx/transfabilog-sub001/internal/handlers"
	"github.com/Jamaalx/transfabilog-sub001/internal/middleware"
	"github.com/Jamaalx/transfabilog-sub001/internal/models"
	"github.com/Jamaalx/transfabilog-sub001/internal/storage"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to PostgreSQL
	db := database.New(&cfg.DB)
	defer db.Close()

	// 3. Initialize file storage (S3-compatible R2 bucket)
	fileStore, err := storage.NewR2Store(
		cfg.Storage.AccountID, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
		cfg.Storage.Bucket, cfg.Storage.PublicURL,
	)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// 4. Set up router with global middleware
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5. Initialize handlers with their dependencies
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	driverHandler := handlers.NewDriverHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db)
	documentHandler := handlers.NewDocumentHandler(db)
	complianceHandler := handlers.NewComplianceHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	uploadHandler := handlers.NewUploadHandler(fileStore)

	// Start the daily compliance notifier
	cron.StartNotifier(db)

	// 6. Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Transfabilog Fleet Compliance API"))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(db.Health())
	})

	// Auth routes — login is rate-limited against brute force
	r.Post("/api/auth/register", authHandler.Register)
	r.With(middleware.RateLimit(rate.Every(12*time.Second), 5)).
		Post("/api/auth/login", authHandler.Login)

	// Uploaded files redirect to the public bucket URL
	r.Get("/api/files/*", uploadHandler.ServeFile)

	// 7. Protected routes (require valid JWT)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/api/auth/me", authHandler.GetMe)
		r.Post("/api/upload", uploadHandler.Upload)

		// Dashboard (read-only, all authenticated users)
		r.Get("/api/dashboard/metrics", dashboardHandler.GetMetrics)
		r.Get("/api/dashboard/expiring", dashboardHandler.GetExpiryAlerts)
		r.Get("/api/dashboard/compliance", dashboardHandler.GetComplianceOverview)

		// Catalog projections for selection widgets
		r.Get("/api/catalog/drivers", complianceHandler.Options(models.OwnerDriver))
		r.Get("/api/catalog/drivers/groups", complianceHandler.Groups(models.OwnerDriver))
		r.Get("/api/catalog/vehicles", complianceHandler.Options(models.OwnerVehicle))
		r.Get("/api/catalog/vehicles/groups", complianceHandler.Groups(models.OwnerVehicle))

		// Notifications (user-scoped)
		r.Get("/api/notifications", notificationHandler.List)
		r.Get("/api/notifications/count", notificationHandler.UnreadCount)
		r.Patch("/api/notifications/read-all", notificationHandler.MarkAllRead)
		r.Patch("/api/notifications/{id}/read", notificationHandler.MarkRead)

		// Read-only driver & vehicle endpoints
		r.Get("/api/drivers", driverHandler.List)
		r.Route("/api/drivers/{id}", func(r chi.Router) {
			r.Get("/", driverHandler.GetByID)
			r.Get("/documents", documentHandler.ListByOwner(models.OwnerDriver))
			r.Get("/compliance", complianceHandler.Report(models.OwnerDriver))
		})
		r.Get("/api/vehicles", vehicleHandler.List)
		r.Route("/api/vehicles/{id}", func(r chi.Router) {
			r.Get("/", vehicleHandler.GetByID)
			r.Get("/documents", documentHandler.ListByOwner(models.OwnerVehicle))
			r.Get("/compliance", complianceHandler.Report(models.OwnerVehicle))
		})
		r.Get("/api/documents/{id}", documentHandler.GetByID)

		// Write operations restricted to dispatcher role and above
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMinRole("dispatcher"))

			r.Post("/api/drivers", driverHandler.Create)
			r.Put("/api/drivers/{id}", driverHandler.Update)
			r.Delete("/api/drivers/{id}", driverHandler.Delete)
			r.Post("/api/drivers/{id}/documents", documentHandler.Create(models.OwnerDriver))

			r.Post("/api/vehicles", vehicleHandler.Create)
			r.Put("/api/vehicles/{id}", vehicleHandler.Update)
			r.Delete("/api/vehicles/{id}", vehicleHandler.Delete)
			r.Post("/api/vehicles/{id}/documents", documentHandler.Create(models.OwnerVehicle))

			r.Route("/api/documents/{id}", func(r chi.Router) {
				r.Put("/", documentHandler.Update)
				r.Delete("/", documentHandler.Delete)
				r.Post("/renew", documentHandler.Renew)
			})
		})
	})

	// 8. Start server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-done
	log.Println("Server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
