package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "stockroute/docs" // registra o documento OpenAPI servido em /swagger/doc.json
	"stockroute/internal/api/auth"
	"stockroute/internal/api/report"
	"stockroute/internal/api/routing"
	"stockroute/internal/api/warehouse"
	"stockroute/internal/pkg/cache"
	"stockroute/internal/pkg/middleware"
)

// Dependencies reúne os Handlers e a infraestrutura já inicializados por injeção de dependências.
type Dependencies struct {
	Warehouse *warehouse.Handler
	Routing   *routing.Handler
	Auth      *auth.Handler
	Report    *report.Handler

	TokenSvc middleware.TokenService

	// Cache nil desativa o rate limiting.
	Cache           cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration

	// Metrics nil desativa o endpoint /metrics.
	Metrics http.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	if deps.Cache != nil {
		r.Use(middleware.RateLimiter(deps.Cache, deps.RateLimitMax, deps.RateLimitPeriod))
	}

	// --- 2. Health check, métricas e documentação ---
	r.Get("/ping", PingHandler)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. Rotas v1 ---
	r.Route("/v1", func(r chi.Router) {
		// Públicas (somente leitura + login)
		r.Post("/auth/login", deps.Auth.LoginHandler)
		r.Get("/warehouses", deps.Warehouse.GetAllWarehousesHandler)
		r.Get("/warehouses/{id}", deps.Warehouse.GetWarehouseByIDHandler)
		r.Get("/warehouses/{id}/value", deps.Warehouse.GetTotalValueHandler)
		r.Get("/events", deps.Routing.ListEventsHandler)
		r.Get("/reports/network", deps.Report.NetworkReportHandler)

		// Protegidas: alteram o estado da rede ou anexam ao log de eventos
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(deps.TokenSvc))

			r.Get("/network/analysis", deps.Routing.AnalyzeNetworkHandler)

			r.Post("/warehouses", deps.Warehouse.CreateWarehouseHandler)
			r.Patch("/warehouses/{id}/volume", deps.Warehouse.SetVolumeHandler)
			r.Post("/deliveries", deps.Routing.DeliverProductsHandler)
			r.Post("/optimizations", deps.Routing.OptimizeHandler)
			r.Post("/sweeps", deps.Routing.SweepExpiredHandler)
			r.Post("/moves", deps.Routing.MoveProductHandler)
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
