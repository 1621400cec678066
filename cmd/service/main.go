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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "errandgo/internal/app"
	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/active_errand_complete_post"
	"errandgo/internal/handlers/rest/errand_accept_post"
	"errandgo/internal/handlers/rest/errand_chat_get"
	"errandgo/internal/handlers/rest/errand_chat_post"
	"errandgo/internal/handlers/rest/errand_get"
	"errandgo/internal/handlers/rest/errand_post"
	"errandgo/internal/handlers/rest/errand_runners_get"
	"errandgo/internal/handlers/rest/errands_available_get"
	"errandgo/internal/handlers/rest/errands_completed_get"
	"errandgo/internal/handlers/rest/errands_get"
	"errandgo/internal/handlers/rest/feedback_post"
	"errandgo/internal/handlers/rest/feedback_summary_get"
	"errandgo/internal/handlers/rest/healthcheck_head"
	"errandgo/internal/handlers/rest/negotiation_accept_post"
	"errandgo/internal/handlers/rest/negotiation_post"
	"errandgo/internal/handlers/rest/notification_read_post"
	"errandgo/internal/handlers/rest/notifications_get"
	"errandgo/internal/handlers/rest/ping_get"
	"errandgo/internal/handlers/rest/profile_get"
	"errandgo/internal/handlers/rest/profile_put"
	"errandgo/internal/handlers/rest/rating_post"
	"errandgo/internal/handlers/rest/ratings_get"
	"errandgo/internal/handlers/rest/runner_dashboard_get"
	"errandgo/internal/handlers/rest/runner_profile_post"
	"errandgo/internal/handlers/rest/runner_profile_put"
	"errandgo/internal/handlers/rest/signin_post"
	"errandgo/internal/handlers/rest/signout_post"
	"errandgo/internal/handlers/rest/signup_post"
	"errandgo/internal/handlers/rest/upload_get"
	"errandgo/internal/pkg/config"
	"errandgo/internal/pkg/dotenv"
	"errandgo/internal/pkg/kafka"
	metrics_system "errandgo/internal/pkg/metrics"
	authmw "errandgo/internal/pkg/middlewares/auth"
	"errandgo/internal/pkg/middlewares/graceful_shutdown"
	"errandgo/internal/pkg/middlewares/metrics"
	"errandgo/internal/pkg/middlewares/rate_limiter"
	"errandgo/internal/pkg/middlewares/timeout"
	"errandgo/internal/pkg/postgres"
	"errandgo/internal/pkg/redis"
	"errandgo/pkg/logger"
	"errandgo/pkg/logger/zap_adapter"
	"errandgo/pkg/token_bucket"
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

	mainLog.Info("starting errandgo application")

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

//nolint:contextcheck // the ongoing context intentionally descends from context.Background() as part of graceful shutdown
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.Database); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(brokers, cfg.Kafka.Sarama.Version)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
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

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
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

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // stays nil while pprof is disabled, so the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not descend from ctx, which is already cancelled here.
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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/signup", signup_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/signin", signin_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/feedback/summary", feedback_summary_get.New(log, app.ServiceFeedback)).Methods("GET")
	router.Handle("/uploads/{filename}", upload_get.New(log, app.UploadStore)).Methods("GET")

	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Middleware(log, app.SessionStore))

	authed.Handle("/auth/signout", signout_post.New(log, app.ServiceAuth)).Methods("POST")
	authed.Handle("/profile", profile_get.New(log, app.ServiceAuth)).Methods("GET")
	authed.Handle("/profile", profile_put.New(log, app.ServiceAuth)).Methods("PUT")

	authed.Handle("/runner/profile", runner_profile_post.New(log, app.ServiceRunner, app.UploadStore, app.SessionStore)).Methods("POST")

	authed.Handle("/errand", errand_post.New(log, app.ServiceErrand)).Methods("POST")
	authed.Handle("/errands", errands_get.New(log, app.ServiceErrand)).Methods("GET")
	authed.Handle("/errands/completed", errands_completed_get.New(log, app.ServiceErrand)).Methods("GET")
	authed.Handle("/errand/{id}", errand_get.New(log, app.ServiceErrand, app.ServiceNegotiation)).Methods("GET")
	authed.Handle("/errand/{id}/runners", errand_runners_get.New(log, app.ServiceRunner)).Methods("GET")

	authed.Handle("/negotiation/{id}/accept", negotiation_accept_post.New(log, app.ServiceNegotiation)).Methods("POST")

	authed.Handle("/errand/{id}/chat", errand_chat_get.New(log, app.ServiceChat)).Methods("GET")
	authed.Handle("/errand/{id}/chat", errand_chat_post.New(log, app.ServiceChat)).Methods("POST")

	authed.Handle("/rating", rating_post.New(log, app.ServiceRating)).Methods("POST")
	authed.Handle("/ratings", ratings_get.New(log, app.ServiceRating)).Methods("GET")

	authed.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	authed.Handle("/notification/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")

	authed.Handle("/feedback", feedback_post.New(log, app.ServiceFeedback)).Methods("POST")

	runnerOnly := authed.NewRoute().Subrouter()
	runnerOnly.Use(authmw.RequireRole(entities.RoleRunner))

	runnerOnly.Handle("/runner/profile", runner_profile_put.New(log, app.ServiceRunner)).Methods("PUT")
	runnerOnly.Handle("/runner/dashboard", runner_dashboard_get.New(log, app.ServiceEarnings)).Methods("GET")
	runnerOnly.Handle("/errands/available", errands_available_get.New(log, app.ServiceRunner)).Methods("GET")
	runnerOnly.Handle("/negotiation", negotiation_post.New(log, app.ServiceNegotiation)).Methods("POST")
	runnerOnly.Handle("/errand/{id}/accept", errand_accept_post.New(log, app.ServiceNegotiation)).Methods("POST")
	runnerOnly.Handle("/active-errand/{id}/complete", active_errand_complete_post.New(log, app.ServiceErrand)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
