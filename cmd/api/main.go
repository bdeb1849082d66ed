package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/marq-e/donuts-backend/internal/config"
	"github.com/marq-e/donuts-backend/internal/modules/customer"
	"github.com/marq-e/donuts-backend/internal/modules/dashboard"
	"github.com/marq-e/donuts-backend/internal/modules/employee"
	"github.com/marq-e/donuts-backend/internal/modules/inventory"
	"github.com/marq-e/donuts-backend/internal/modules/product"
	"github.com/marq-e/donuts-backend/internal/modules/sales"
	"github.com/marq-e/donuts-backend/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}

func run() error {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.MongoDB)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ── Catalog & Inventory ─────────────────────────────────
	inventoryRepo := inventory.NewMongoRepository(db)
	inventoryService := inventory.NewService(inventoryRepo)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	productRepo := product.NewMongoRepository(db)
	productService := product.NewService(productRepo, inventoryRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── Sales & Analytics ───────────────────────────────────
	salesRepo := sales.NewMongoRepository(db)
	salesService := sales.NewService(salesRepo)
	sales.NewHandler(salesService).RegisterRoutes(router)

	// ── People ──────────────────────────────────────────────
	employeeRepo := employee.NewMongoRepository(db)
	employeeService := employee.NewService(employeeRepo)
	employee.NewHandler(employeeService).RegisterRoutes(router)

	customerRepo := customer.NewMongoRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Dashboard ───────────────────────────────────────────
	dashboardRepo := dashboard.NewMongoRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Marq' E Donuts API listening on :%s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
