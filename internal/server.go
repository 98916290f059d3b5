package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/miguelofoliveir/pandafit-frontend/internal/auth"
	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/cache"
	"github.com/miguelofoliveir/pandafit-frontend/internal/config"
	"github.com/miguelofoliveir/pandafit-frontend/internal/middleware"
	"github.com/miguelofoliveir/pandafit-frontend/internal/querycache"
	"github.com/miguelofoliveir/pandafit-frontend/internal/retry"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"
	"github.com/miguelofoliveir/pandafit-frontend/internal/tracker"
)

// loginCheckCacheMaxCost bounds the tokens kept by the login checker cache,
// every token costs 1.
const loginCheckCacheMaxCost = 10_000

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config

	redisClient    *redis.Client
	rateLimiter    middleware.RequestRateLimiter
	authService    *auth.Service
	loginChecker   *auth.LoginChecker
	loginCache     *cache.RistrettoCache
	trackerService *tracker.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("pandafit", "service", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled)
	if err != nil {
		return nil, err
	}

	backendClient := backend.NewClient(
		cfg.BackendURL,
		cfg.BackendTimeout(),
		backend.WithMetrics(metricsManager),
	)
	log.Debugf("using backend: %s", backendClient.BaseURL())

	authService := auth.NewAuthService(cfg.SessionTTL(), rdb, backendClient)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	loginCache, err := cache.NewRistrettoCache(loginCheckCacheMaxCost)
	if err != nil {
		return nil, fmt.Errorf("new login check cache: %w", err)
	}

	queryCache := querycache.New(
		cfg.QueryCacheSizeMB*1024*1024,
		cfg.QueryCacheTTL(),
		metricsManager,
	)
	promRegistry.MustRegister(metrics.CacheCollectors("pandafit", "service", queryCache)...)

	retryPolicy := retry.Policy{
		MaxRetries:  uint64(cfg.RetryMaxRetries),
		Interval:    cfg.RetryInterval(),
		Exponential: cfg.RetryExponential,
	}

	return &Server{
		config: cfg,

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  authService,
		loginChecker: auth.NewLoginChecker(authService, loginCache),
		loginCache:   loginCache,
		trackerService: tracker.NewService(
			backendClient,
			queryCache,
			retryPolicy,
			location,
			metricsManager,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	if s.trackerService == nil || s.authService == nil || s.loginChecker == nil {
		return nil, errors.New("server dependencies not set")
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("pandafit-router"))

	api := r.PathPrefix("/api").Subrouter()

	settingsHandler := tracker.NewSettingsHandler(
		s.authService,
		s.loginChecker,
		s.trackerService,
		s.metricsManager,
	)
	loginRouter := api.PathPrefix("/login").Subrouter()
	loginRouter.HandleFunc("", settingsHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	loginRouter.Use(middleware.RateLimit(
		s.rateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))
	api.HandleFunc("/logout", settingsHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	api.HandleFunc("/session", settingsHandler.HandleSession).Methods("GET", "OPTIONS").Name("session")
	api.HandleFunc("/reset", settingsHandler.HandleReset).Methods("POST", "OPTIONS").Name("reset")

	historyHandler := tracker.NewHistoryHandler(s.trackerService)
	api.HandleFunc("/dashboard", historyHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	api.HandleFunc("/history", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-history")
	api.HandleFunc("/history", historyHandler.HandleMarkDone).Methods("POST").Name("mark-done")

	workoutsHandler := tracker.NewWorkoutsHandler(s.trackerService)
	api.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/workouts", workoutsHandler.HandleCreate).Methods("POST").Name("new-workout")
	api.HandleFunc("/workouts/catalogue", workoutsHandler.HandleCatalogue).Methods("GET", "OPTIONS").Name("workouts-catalogue")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT").Name("update-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE").Name("delete-workout")

	exercisesHandler := tracker.NewExercisesHandler(s.trackerService)
	api.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	api.HandleFunc("/exercises", exercisesHandler.HandleCreate).Methods("POST").Name("new-exercise")
	api.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	api.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT").Name("update-exercise")
	api.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE").Name("delete-exercise")

	dietHandler := tracker.NewDietHandler(s.trackerService)
	api.HandleFunc("/diet", dietHandler.HandleGet).Methods("GET", "OPTIONS").Name("diet")
	api.HandleFunc("/diet", dietHandler.HandleCreate).Methods("POST").Name("new-meal")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.LogRequest())
	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.loginCache != nil {
		s.loginCache.Close()
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
