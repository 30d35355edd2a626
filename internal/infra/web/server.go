package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"elite-gym-console/internal/usecase"
)

// Server exposes the console REST API.
type Server struct {
	planUC    usecase.PlanUseCase
	paymentUC usecase.PaymentUseCase
	clientUC  usecase.ClientUseCase
	productUC usecase.ProductUseCase
	saleUC    usecase.SaleUseCase
	statsUC   usecase.StatsUseCase
	apiKey    string
	log       *zerolog.Logger
}

func NewServer(
	planUC usecase.PlanUseCase,
	paymentUC usecase.PaymentUseCase,
	clientUC usecase.ClientUseCase,
	productUC usecase.ProductUseCase,
	saleUC usecase.SaleUseCase,
	statsUC usecase.StatsUseCase,
	apiKey string,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		planUC:    planUC,
		paymentUC: paymentUC,
		clientUC:  clientUC,
		productUC: productUC,
		saleUC:    saleUC,
		statsUC:   statsUC,
		apiKey:    apiKey,
		log:       logger,
	}
}

// Router builds the route tree. Everything under /api/v1 is behind the
// bearer-key middleware; health and metrics stay open for probes/scrapers.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/tiers", s.handleListTiers)
		r.Get("/plans/resolve", s.handleResolvePlan)

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", s.handleListPayments)
			r.Post("/", s.handleSubmitPayment)
			r.Delete("/{id}", s.handleDeletePayment)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.handleListClients)
			r.Post("/", s.handleCreateClient)
			r.Get("/{id}", s.handleGetClient)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Post("/", s.handleCreateProduct)
			r.Put("/{id}", s.handleUpdateProduct)
			r.Delete("/{id}", s.handleDeleteProduct)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", s.handleListSales)
			r.Post("/", s.handleRegisterSale)
		})

		r.Get("/stats", s.handleStats)
	})

	return r
}

// authMiddleware provides simple Bearer token authentication for the API.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			s.log.Error().Msg("API key is not configured")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			http.Error(w, "Unauthorized: Malformed token", http.StatusUnauthorized)
			return
		}

		if tokenParts[1] != s.apiKey {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
