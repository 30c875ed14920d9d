package router

import (
	"net/http"
	"time"

	_ "rescue-dashboard/docs" // registra los docs de swagger
	mem "rescue-dashboard/internal/adapters/storage/memory"
	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/dashboard"
	"rescue-dashboard/internal/domain/presets"
	"rescue-dashboard/internal/middleware"
	"rescue-dashboard/internal/platform/config"
	"rescue-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa el dataset embebido in-memory.
	Repository animals.Repository
	Backend    string

	Config *config.Config // nil = config.Default()
	Logger logger.Logger  // nil = Nop
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo, backend := opts.Repository, opts.Backend
	if repo == nil {
		recs, err := mem.SampleRecords()
		if err != nil {
			log.Error("load embedded sample", map[string]any{"error": err})
		}
		repo, backend = mem.NewAnimalsRepo(recs), config.DriverMemory
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observe(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	if cfg.Server.RateLimitRPM > 0 {
		r.Use(httprate.LimitByIP(cfg.Server.RateLimitRPM, time.Minute))
	}

	r.Get("/health", healthHandler(backend))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	animalsSvc := animals.NewService(repo, animals.ServiceOptions{
		Backend: backend,
		Timeout: cfg.Store.ReadTimeout,
		Breaker: animals.BreakerSettings{
			MaxRequests:      cfg.Store.BreakerHalfOpens,
			Timeout:          cfg.Store.BreakerOpenFor,
			FailureThreshold: cfg.Store.BreakerFailures,
		},
		Logger: log,
	})
	dashSvc := dashboard.NewService(animalsSvc, dashboard.Options{
		CacheSize:      cfg.Dashboard.CacheSize,
		TTL:            cfg.Dashboard.SnapshotTTL,
		LocalNarrowing: cfg.Dashboard.LocalNarrowing,
		ReadTimeout:    cfg.Store.ReadTimeout,
		PageSize:       cfg.Dashboard.PageSize,
		TopN:           cfg.Dashboard.TopN,
		Logger:         log,
	})

	// Rutas por módulo
	presets.RegisterRoutes(r)
	dashboard.RegisterRoutes(r, dashSvc, dashboard.PageInfo{
		Title:   "Grazioso Salvare",
		Tagline: "Rescue dog candidate dashboard",
	})

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// healthHandler es liveness: no toca el store.
//
// @Summary     Liveness probe
// @Tags        ops
// @Produce     json
// @Success     200 {object} healthResponse
// @Router      /health [get]
func healthHandler(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Store: backend})
	}
}
