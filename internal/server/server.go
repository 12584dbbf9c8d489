package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mangapulse/economy-engine/internal/database"
	"github.com/mangapulse/economy-engine/internal/droprate"
	"github.com/mangapulse/economy-engine/internal/gacha"
	"github.com/mangapulse/economy-engine/internal/handler"
	"github.com/mangapulse/economy-engine/internal/logger"
	"github.com/mangapulse/economy-engine/internal/market"
	"github.com/mangapulse/economy-engine/internal/metrics"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	dropRateService droprate.Service
	gachaService    gacha.Service
	marketService   market.Service
}

// NewServer creates a new Server instance
func NewServer(port int, adminAPIKey string, trustedProxies []string, dbPool database.Pool, dropRateService droprate.Service, gachaService gacha.Service, marketService market.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
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
		// Drop rate routes. Reads are open; writes need the admin key.
		dropRateHandler := handler.NewDropRateHandler(dropRateService)
		r.Get("/droprates", dropRateHandler.HandleGetRates)
		r.With(AdminAuthMiddleware(adminAPIKey, trustedProxies, detector)).
			Put("/droprates", dropRateHandler.HandleSetRates)

		// Pack routes
		gachaHandler := handler.NewGachaHandler(gachaService)
		r.Route("/packs", func(r chi.Router) {
			r.Post("/open", gachaHandler.HandleOpenPack)
		})

		// Marketplace routes
		marketHandler := handler.NewMarketHandler(marketService)
		r.Route("/market", func(r chi.Router) {
			r.Get("/listings", marketHandler.HandleListListings)
			r.Route("/listing", func(r chi.Router) {
				r.Get("/", marketHandler.HandleGetListing)
				r.Post("/", marketHandler.HandleCreateListing)
				r.Post("/cancel", marketHandler.HandleCancelListing)
			})
			r.Post("/purchase", marketHandler.HandlePurchase)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		dropRateService: dropRateService,
		gachaService:    gachaService,
		marketService:   marketService,
	}
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

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
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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
