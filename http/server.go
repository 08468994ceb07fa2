package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/audit"
)

// Version reported in API response metadata.
const Version = "1.1.0"

// Server serves the public audit API.
//
// Routes:
//
//	POST /api/audit     {"url": "..."} -> general audit result
//	POST /api/schemas   {"url": "..."} -> schema audit + JSON-LD templates
//	POST /api/subscribe {"email": "..."} -> newsletter subscription
//	GET  /healthz
type Server struct {
	Auditor geoaudit.Auditor
	Fetcher geoaudit.Fetcher

	// Audits, when set, persists every general audit result.
	Audits geoaudit.AuditService

	// Subscribers, when set, enables the subscribe endpoint.
	Subscribers geoaudit.SubscriberService

	// AIEnabled is reported in response metadata so callers know
	// whether analyses are AI-powered or rule-based.
	AIEnabled bool

	Logger *slog.Logger

	limiter *ClientLimiter
}

type apiMeta struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	AIPowered bool      `json:"aiPowered"`
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Handler returns the API handler.
func (s *Server) Handler() http.Handler {
	if s.limiter == nil {
		s.limiter = NewClientLimiter()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/audit", s.handleAudit)
	mux.HandleFunc("/api/schemas", s.handleSchemas)
	mux.HandleFunc("/api/subscribe", s.handleSubscribe)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// ListenAndServe serves the API on addr until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	if done := s.preflight(w, r); done {
		return
	}
	if !s.allow(w, r, "audit", AnonAuditPerMinute, AuthAuditPerMinute) {
		return
	}

	pageURL, ok := s.requestURL(w, r)
	if !ok {
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		s.logger().Error("audit fetch failed", "url", pageURL, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to analyze URL",
			"message": geoaudit.ErrorMessage(err),
		})
		return
	}

	result := s.Auditor.General(r.Context(), pageURL, html)

	if s.Audits != nil {
		record := &geoaudit.AuditRecord{URL: pageURL, OverallScore: result.OverallScore, Grade: result.Grade, Result: result}
		if err := s.Audits.CreateAuditRecord(r.Context(), record); err != nil {
			s.logger().Error("failed to persist audit record", "url", pageURL, "error", err)
		}
	}

	respondJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		*geoaudit.GeneralAudit
		Meta apiMeta `json:"_meta"`
	}{
		Success:      true,
		GeneralAudit: result,
		Meta:         s.meta(),
	})
}

func (s *Server) handleSchemas(w http.ResponseWriter, r *http.Request) {
	if done := s.preflight(w, r); done {
		return
	}
	if !s.allow(w, r, "schema", AnonSchemaPerMinute, AuthSchemaPerMinute) {
		return
	}

	pageURL, ok := s.requestURL(w, r)
	if !ok {
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		s.logger().Error("schema fetch failed", "url", pageURL, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to analyze URL",
			"message": geoaudit.ErrorMessage(err),
		})
		return
	}

	result := s.Auditor.Schema(r.Context(), pageURL, html)
	templates := audit.Templates(result.PageData, result.PageType, result.ExistingTypes)

	respondJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		*geoaudit.SchemaAudit
		Templates []geoaudit.SchemaTemplate `json:"templates"`
		Meta      apiMeta                   `json:"_meta"`
	}{
		Success:     true,
		SchemaAudit: result,
		Templates:   templates,
		Meta:        s.meta(),
	})
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if done := s.preflight(w, r); done {
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !strings.Contains(body.Email, "@") {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "Please provide a valid email address"})
		return
	}

	if s.Subscribers == nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{"error": "Newsletter service is not configured"})
		return
	}

	if _, err := s.Subscribers.Subscribe(r.Context(), body.Email); err != nil {
		if geoaudit.ErrorCode(err) == geoaudit.ECONFLICT {
			respondJSON(w, http.StatusBadRequest, map[string]any{"error": "You are already subscribed!"})
			return
		}
		s.logger().Error("subscription failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to subscribe. Please try again."})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"message": "Subscription successful"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// preflight writes CORS headers and handles OPTIONS and method
// validation. Returns true when the request is fully handled.
func (s *Server) preflight(w http.ResponseWriter, r *http.Request) bool {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return true
	case http.MethodPost:
		return false
	default:
		respondJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
		return true
	}
}

// allow enforces the per-client rate limit for an endpoint. Returns
// false after writing a 429 response when the limit is exceeded.
func (s *Server) allow(w http.ResponseWriter, r *http.Request, scope string, anonLimit, authLimit int) bool {
	authorized := strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
	limit := anonLimit
	tier := "anon"
	if authorized {
		limit = authLimit
		tier = "auth"
	}

	key := clientIP(r) + ":" + scope + ":" + tier
	allowed, retryAfter := s.limiter.Allow(key, limit)
	if !allowed {
		respondJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":      "Rate limit exceeded",
			"retryAfter": retryAfter,
		})
		return false
	}
	return true
}

// requestURL decodes and validates the request body's URL field.
func (s *Server) requestURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "URL is required"})
		return "", false
	}

	u, err := url.Parse(body.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid URL"})
		return "", false
	}

	return body.URL, true
}

func (s *Server) meta() apiMeta {
	return apiMeta{
		Version:   Version,
		Timestamp: time.Now().UTC(),
		AIPowered: s.AIEnabled,
	}
}

// clientIP derives the client key from X-Forwarded-For or the remote
// address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
