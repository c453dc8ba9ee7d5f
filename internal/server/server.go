package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lanternworks/nightmarket/internal/auth"
	"github.com/lanternworks/nightmarket/internal/database"
	"github.com/lanternworks/nightmarket/internal/handler"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/merchant"
	"github.com/lanternworks/nightmarket/internal/metrics"
	"github.com/lanternworks/nightmarket/internal/player"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/sse"
	"github.com/lanternworks/nightmarket/internal/trade"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	sessions   *auth.Manager
}

// NewServer wires the router. Three auth zones: public market data,
// session-scoped player routes, API-key admin routes.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, playerService player.Service, tradeService trade.Service, licenseService license.Service, marketService market.Service, merchantService merchant.Service, catalog repository.Catalog, sessions *auth.Manager, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Account routes, reachable without a session
		r.Post("/players/register", handler.HandleRegisterPlayer(playerService, sessions))
		r.Post("/auth/login", handler.HandleLogin(playerService, sessions))

		// Session-scoped player routes
		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(sessions, trustedProxies, detector))

			r.Route("/players/me", func(r chi.Router) {
				r.Get("/", handler.HandleGetMe(playerService))
				r.Put("/location", handler.HandleUpdateLocation(playerService))
				r.Get("/inventory", handler.HandleGetInventory(playerService))
				r.Get("/trades", handler.HandleGetMyTrades(tradeService))
				r.Post("/bonus", handler.HandleClaimBonus(playerService))
				r.Post("/license", handler.HandleUpgradeLicense(licenseService))
			})

			r.Post("/trades/buy", handler.HandleBuyItem(tradeService))
			r.Post("/trades/sell", handler.HandleSellItem(tradeService))

			r.Get("/events", handleEvents(hub))
		})

		// Market routes (public read access)
		r.Route("/market", func(r chi.Router) {
			r.Get("/prices", handler.HandleGetPrices(marketService))
			r.Get("/prices/{item}", handler.HandleGetItemPrice(marketService))
			r.Get("/catalog", handler.HandleGetCatalog(catalog))
		})

		// Merchant routes (public read access)
		r.Route("/merchants", func(r chi.Router) {
			r.Get("/", handler.HandleListMerchants(merchantService))
			r.Get("/nearby", handler.HandleNearbyMerchants(merchantService))
			r.Get("/{merchantID}", handler.HandleGetMerchant(merchantService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyAuthMiddleware(apiKey, trustedProxies, detector))

			r.Post("/recompute-prices", handler.HandleAdminRecomputePrices(marketService))
			r.Post("/restock", handler.HandleAdminRestock(merchantService))
			r.Get("/trades", handler.HandleAdminListTrades(tradeService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		sessions: sessions,
	}
}

// handleEvents streams live game events to the client. The handler
// blocks until the consumer disconnects, so the gauge tracks open
// connections.
func handleEvents(hub *sse.Hub) http.HandlerFunc {
	stream := sse.Handler(hub)
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.SSEClients.Inc()
		defer metrics.SSEClients.Dec()
		stream(w, r)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probe endpoints fire constantly and would drown the log
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
