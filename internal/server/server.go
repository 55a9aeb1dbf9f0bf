package server

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Stashkeeper_Go/internal/command"
	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/handler"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/sse"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	// MediaDir is served under MediaBaseURL when both are set
	MediaDir     string
	MediaBaseURL string

	// CheckOrigin overrides the WebSocket same-origin check
	CheckOrigin func(r *http.Request) bool
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	svc        state.Service
	sseHub     *sse.Hub
	wsHub      *command.Hub
}

// NewServer creates a new Server instance. dbPool is nil in offline mode.
func NewServer(opts Options, dbPool database.Pool, svc state.Service, sseHub *sse.Hub, wsHub *command.Hub) *Server {
	r := chi.NewRouter()

	mediaPrefix := ""
	if opts.MediaDir != "" && opts.MediaBaseURL != "" {
		mediaPrefix = opts.MediaBaseURL
	}

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector, mediaPrefix))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(svc))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Realtime
	r.Get(PathWebSocket, command.Handler(wsHub, command.NewDispatcher(svc), opts.CheckOrigin))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", sse.Handler(sseHub))
		r.Get("/users", handler.HandleListUsers(svc))

		r.Route("/inventories", func(r chi.Router) {
			r.Get("/", handler.HandleListInventories(svc))

			r.Route("/{inventoryID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetInventory(svc))
				r.Put("/money", handler.HandleSetMoney(svc))
				r.Put("/meta", handler.HandleSetMeta(svc))
				r.Put("/fixed-categories/{index}", handler.HandleRenameFixedCategory(svc))

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", handler.HandleCreateCustomCategory(svc))
					r.Patch("/{categoryID}", handler.HandleRenameCustomCategory(svc))
					r.Delete("/{categoryID}", handler.HandleDeleteCustomCategory(svc))
					r.Post("/{categoryID}/items", handler.HandleCreateItem(svc))
					r.Delete("/{categoryID}/items/{itemID}", handler.HandleDeleteItem(svc))
				})

				r.Route("/items/{itemID}", func(r chi.Router) {
					r.Patch("/", handler.HandleEditItem(svc))
					r.Post("/move", handler.HandleMoveItem(svc))
					r.Post("/transfer", handler.HandleTransferItem(svc))
					r.Post("/shoot", handler.HandleShoot(svc))
					r.Post("/reload", handler.HandleReloadWeapon(svc))
				})
			})
		})

		r.Route("/weapons", func(r chi.Router) {
			r.Get("/", handler.HandleListWeapons(svc))
			r.Post("/", handler.HandleCreateWeapon(svc))
			r.Delete("/{weaponID}", handler.HandleDeleteWeapon(svc))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleGetShop(svc))
			r.Route("/stands/{standID}", func(r chi.Router) {
				r.Post("/weapons", handler.HandleAddWeaponToStand(svc))
				r.Delete("/weapons/{weaponID}", handler.HandleRemoveWeaponFromStand(svc))
				r.Post("/randomize", handler.HandleRandomizeStand(svc))
				r.Post("/purchase", handler.HandlePurchase(svc))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload", handler.HandleAdminReload(svc))
		})
	})

	// Uploaded weapon images
	if mediaPrefix != "" {
		fs := http.StripPrefix(mediaPrefix, http.FileServer(http.Dir(opts.MediaDir)))
		r.Handle(mediaPrefix+"/*", fs)
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
		svc:    svc,
		sseHub: sseHub,
		wsHub:  wsHub,
	}
}

// Handler exposes the router, mainly for tests
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

// Flush keeps SSE streaming through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the WebSocket upgrade take over the connection
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		if actor := r.Header.Get(handler.HeaderUserID); actor != "" {
			ctx = logger.WithActor(ctx, actor)
		}
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
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
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

// Stop stops the server gracefully. Realtime clients are disconnected first,
// since their long-lived requests would otherwise hold Shutdown open.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	if s.wsHub != nil {
		s.wsHub.Close()
	}
	if s.sseHub != nil {
		s.sseHub.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
