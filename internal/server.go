package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/club"
	"github.com/2beens/clubtrainer/internal/config"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/misc"
	"github.com/2beens/clubtrainer/internal/performance"
	"github.com/2beens/clubtrainer/internal/routines"
	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/internal/wellness"
	"github.com/2beens/clubtrainer/internal/workouts"
	"github.com/2beens/clubtrainer/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	calendar    *calendar.Calendar
	redisClient *redis.Client
	store       store.Store
	checker     auth.Checker
	rateLimiter middleware.RequestRateLimiter
	pingStore   misc.StorePinger

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	SessionSecret           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.SessionSecret == "" {
		return nil, errors.New("session secret not set")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("club", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       params.Config.RedisDB,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "club-backend", rdb)
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	region := calendar.LoadRegion(params.Config.Region)
	log.Debugf("club region: %s", region)

	s := newServer(
		params.Config,
		params.VersionInfo,
		store.NewRedisStore(rdb),
		auth.NewTokenChecker(params.SessionSecret, params.Config.SessionTTL()),
		calendar.New(region),
		metricsManager,
		promRegistry,
	)
	s.redisClient = rdb
	s.rateLimiter = redis_rate.NewLimiter(rdb)
	s.pingStore = func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
	s.otelShutdown = otelShutdown
	return s, nil
}

// newServer wires everything but the redis connection, which NewServer adds.
func newServer(
	cfg *config.Config,
	versionInfo string,
	st store.Store,
	checker auth.Checker,
	cal *calendar.Calendar,
	metricsManager *metrics.Manager,
	promRegistry *prometheus.Registry,
) *Server {
	return &Server{
		config:         cfg,
		versionInfo:    versionInfo,
		calendar:       cal,
		store:          st,
		checker:        checker,
		pingStore:      func(context.Context) error { return nil },
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   func() {},
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("club-router"))

	clubRepo := club.NewRepo(s.store)
	routinesService := routines.NewService(routines.NewRepo(s.store))
	wellnessService := wellness.NewService(wellness.NewRepo(s.store), s.calendar, s.metricsManager)
	loadsRepo := workouts.NewLoadsRepo(s.store)
	rpeRepo := workouts.NewRPERepo(s.store)

	miscHandler := misc.NewHandler(s.pingStore, s.versionInfo)
	miscHandler.SetupRoutes(r)

	clubHandler := club.NewHandler(clubRepo)
	clubHandler.SetupRoutes(r)

	routinesHandler := routines.NewHandler(routinesService, s.calendar)
	routinesHandler.SetupRoutes(r)

	wellnessHandler := wellness.NewHandler(wellnessService)
	wellnessHandler.SetupRoutes(r, s.rateLimiter, s.config.WellnessSubmitRPM, s.metricsManager)

	workoutsHandler := workouts.NewHandler(
		workouts.NewResolver(clubRepo, routinesService, wellnessService, loadsRepo, s.calendar, s.metricsManager),
		workouts.NewService(loadsRepo, rpeRepo, s.calendar, s.metricsManager),
	)
	workoutsHandler.SetupRoutes(r)

	performanceHandler := performance.NewHandler(
		performance.NewAggregator(clubRepo, loadsRepo, rpeRepo, wellnessService, routinesService),
		s.calendar,
	)
	performanceHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("not found: %s %s", r.Method, r.URL.Path)
		pkg.WriteJSONError(w, http.StatusNotFound, "not found")
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.checker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
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

	ctx, timeoutCancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
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
