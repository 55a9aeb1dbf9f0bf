package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// AuthMiddleware validates API key.
// Public paths are open. Stream paths also accept the key as a query parameter.
// Paths under mediaPrefix are open when it is set.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector, mediaPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path, mediaPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if providedKey == "" && isStreamPath(r.URL.Path) {
				providedKey = r.URL.Query().Get(QueryParamAPIKey)
			}

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path, mediaPrefix string) bool {
	if mediaPrefix != "" && strings.HasPrefix(path, mediaPrefix+"/") {
		return true
	}
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func isStreamPath(path string) bool {
	return slices.Contains(StreamPaths, path)
}

// RequestSizeLimitMiddleware caps request bodies; weapon uploads are the largest
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts one address's activity since the entry was created
type ipWindow struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector keeps fixed per-IP windows. Entries expire
// DetectorWindow after the first request, and at most DetectorMaxTrackedIPs
// addresses are tracked at once.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: expirable.NewLRU[string, *ipWindow](DetectorMaxTrackedIPs, nil, DetectorWindow),
	}
}

// window returns the live window for ip. Caller holds mu.
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	if w, ok := s.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{}
	s.windows.Add(ip, w)
	return w
}

// RecordFailedAuth counts a rejected key and alerts past the threshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failedAuth++
	if w.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
}

// RecordRequest counts a request and reports whether ip is still under the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++
	if w.requests <= RequestLimitPerWindow {
		return true
	}
	if w.requests%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// counts is for tests
func (s *SuspiciousActivityDetector) counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows.Peek(ip); ok {
		return w.requests, w.failedAuth
	}
	return 0, 0
}

// SecurityLoggingMiddleware rejects addresses over the request limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	// rightmost hop is the one our proxy saw
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
