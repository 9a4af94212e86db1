package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "service/internal/app"
	"service/internal/entities"
	"service/internal/handlers/rest/admin_collections_post"
	"service/internal/handlers/rest/admin_items_post"
	"service/internal/handlers/rest/blackouts_delete"
	"service/internal/handlers/rest/blackouts_get"
	"service/internal/handlers/rest/blackouts_post"
	"service/internal/handlers/rest/capacity_delete"
	"service/internal/handlers/rest/capacity_get"
	"service/internal/handlers/rest/capacity_post"
	"service/internal/handlers/rest/checkout_post"
	"service/internal/handlers/rest/collection_post"
	"service/internal/handlers/rest/collections_bulk_post"
	"service/internal/handlers/rest/driver_collections_post"
	"service/internal/handlers/rest/healthcheck_head"
	"service/internal/handlers/rest/items_post"
	"service/internal/handlers/rest/ping_get"
	"service/internal/handlers/rest/reservations_post"
	"service/internal/handlers/rest/slots_get"
	"service/internal/handlers/rest/trucks_get"
	"service/internal/handlers/rest/trucks_post"
	"service/internal/handlers/rest/trucks_put"
	"service/internal/pkg/config"
	"service/internal/pkg/dotenv"
	metrics_system "service/internal/pkg/metrics"
	"service/internal/pkg/middlewares/auth"
	"service/internal/pkg/middlewares/graceful_shutdown"
	"service/internal/pkg/middlewares/metrics"
	"service/internal/pkg/middlewares/rate_limiter"
	"service/internal/pkg/middlewares/timeout"
	"service/internal/pkg/postgres"
	"service/pkg/logger"
	"service/pkg/logger/zap_adapter"
	"service/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting collection-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	sessionSecret := []byte(cfg.Auth.SessionSecret)

	// донорские маршруты: достаточно валидной сессии
	donor := router.NewRoute().Subrouter()
	donor.Use(auth.Middleware(log, sessionSecret))
	donor.Handle("/collections/slots", slots_get.New(log, app.ServiceAvailability)).Methods("GET")
	donor.Handle("/collections", collection_post.New(log, app.ServiceBooking)).Methods("POST")
	donor.Handle("/collections/bulk", collections_bulk_post.New(log, app.ServiceBooking)).Methods("POST")
	donor.Handle("/items", items_post.New(log, app.ServiceItem)).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(log, sessionSecret))
	admin.Use(auth.RequireRole(entities.RoleAdmin))
	admin.Handle("/collections", admin_collections_post.New(log, app.ServiceBooking)).Methods("POST")
	admin.Handle("/collections/blackouts", blackouts_get.New(log, app.ServiceSchedule)).Methods("GET")
	admin.Handle("/collections/blackouts", blackouts_post.New(log, app.ServiceSchedule)).Methods("POST")
	admin.Handle("/collections/blackouts", blackouts_delete.New(log, app.ServiceSchedule)).Methods("DELETE")
	admin.Handle("/collections/capacity", capacity_get.New(log, app.ServiceSchedule)).Methods("GET")
	admin.Handle("/collections/capacity", capacity_post.New(log, app.ServiceSchedule)).Methods("POST")
	admin.Handle("/collections/capacity", capacity_delete.New(log, app.ServiceSchedule)).Methods("DELETE")
	admin.Handle("/items", admin_items_post.New(log, app.ServiceItem)).Methods("POST")
	admin.Handle("/trucks", trucks_get.New(log, app.ServiceSchedule)).Methods("GET")
	admin.Handle("/trucks", trucks_post.New(log, app.ServiceSchedule)).Methods("POST")
	admin.Handle("/trucks", trucks_put.New(log, app.ServiceSchedule)).Methods("PUT")

	driver := router.PathPrefix("/driver").Subrouter()
	driver.Use(auth.Middleware(log, sessionSecret))
	driver.Use(auth.RequireRole(entities.RoleDriver))
	driver.Handle("/collections", driver_collections_post.New(log, app.ServiceBooking)).Methods("POST")

	marketplace := router.PathPrefix("/marketplace").Subrouter()
	marketplace.Use(auth.Middleware(log, sessionSecret))
	marketplace.Use(auth.RequireRole(entities.RoleCustomer))
	marketplace.Handle("/reservations", reservations_post.New(log, app.ServiceMarketplace)).Methods("POST")
	marketplace.Handle("/checkout", checkout_post.New(log, app.ServiceMarketplace)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
