package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/nhalm/pgxkit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourorg/inventory/internal/api"
	"github.com/yourorg/inventory/internal/cache"
	"github.com/yourorg/inventory/internal/metrics"
	"github.com/yourorg/inventory/internal/repository"
	"github.com/yourorg/inventory/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
}

func runServe(_ *cobra.Command, _ []string) error {
	canonlog.SetupGlobalLogger(viper.GetString("LOG_LEVEL"), viper.GetString("LOG_FORMAT"))

	host := viper.GetString("HOST")
	port := viper.GetInt("PORT")
	addr := fmt.Sprintf("%s:%d", host, port)

	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := context.Background()
	db := pgxkit.NewDB()
	if err := db.Connect(ctx, databaseURL); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Shutdown(ctx) }()

	listCache, err := cache.Connect(ctx, viper.GetString("REDIS_URL"), "inventory", viper.GetDuration("CACHE_TTL"))
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = listCache.Close() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	queryMetrics := metrics.New(registry)

	// Repositories
	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Services
	svcOpts := []service.Option{
		service.WithCache(listCache),
		service.WithObserver(queryMetrics),
	}
	brandSvc := service.NewBrandService(brandRepo, svcOpts...)
	categorySvc := service.NewCategoryService(categoryRepo, svcOpts...)

	// Handler
	handler := api.NewHandler(brandSvc, categorySvc, viper.GetString("WAREHOUSE_HEADER"))

	routeConfig := api.RouteConfig{
		ReadRPS:        viper.GetInt("RATE_LIMIT_READ_RPS"),
		WriteRPS:       viper.GetInt("RATE_LIMIT_WRITE_RPS"),
		MaxBodyBytes:   viper.GetInt64("MAX_REQUEST_BODY_BYTES"),
		AllowedOrigins: api.ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		Metrics:        queryMetrics.Handler(),
	}

	if routeConfig.ReadRPS == 0 {
		routeConfig.ReadRPS = 100
	}
	if routeConfig.WriteRPS == 0 {
		routeConfig.WriteRPS = 20
	}
	if routeConfig.MaxBodyBytes == 0 {
		routeConfig.MaxBodyBytes = 1048576
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        handler.RoutesWithConfig(routeConfig),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		fmt.Printf("Server starting on %s (cache enabled: %t)\n", addr, listCache.Enabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}
