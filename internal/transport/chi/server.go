// Package chi exposes the query interpreter over HTTP.
package chi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/domain"
	healthuc "github.com/syntax922/immich-search/internal/usecase/health"
	"github.com/syntax922/immich-search/internal/usecase/payload"
)

//go:embed form.html
var searchFormHTML []byte

// Interpreter parses raw query text into filters.
type Interpreter interface {
	Interpret(ctx context.Context, text string) (domain.FilterSet, error)
}

// PayloadBuilder serializes filters into the downstream search contract.
type PayloadBuilder interface {
	Build(fs domain.FilterSet) (payload.SearchPayload, string)
	RedirectURL(rawPayload string) string
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server is the HTTP API server.
type Server struct {
	interpreter   Interpreter
	payloads      PayloadBuilder
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(interpreter Interpreter, payloads PayloadBuilder, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		interpreter: interpreter,
		payloads:    payloads,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrRecognizerUnavailable, http.StatusBadGateway, codeRecognizerUnavailable),
	}
	return s
}

// Routes registers all endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.SearchForm)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/parse", s.Parse)
	r.Get("/searchRedirect", s.SearchRedirect)
}

// SearchForm handles GET /: a minimal HTML page to type a query into.
func (s *Server) SearchForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(searchFormHTML)
}

// Parse handles POST /parse.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	fs, err := s.interpreter.Interpret(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	p, link := s.payloads.Build(fs)

	writeJSON(w, http.StatusOK, ParseResponse{
		Filters: filterSetToDTO(fs),
		Payload: p,
		URL:     link,
	})
}

// SearchRedirect handles GET /searchRedirect: takes the already-encoded
// payload from the query parameter and redirects to the search URL.
func (s *Server) SearchRedirect(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("query")
	if raw == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter is required")
		return
	}

	http.Redirect(w, r, s.payloads.RedirectURL(raw), http.StatusFound)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrRecognizerUnavailable) {
		return domain.ErrRecognizerUnavailable.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, safeDomainMessage(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
