package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat"
	"github.com/kailas-cloud/dateformat/internal/domain"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	datetimeuc "github.com/kailas-cloud/dateformat/internal/usecase/datetime"
	healthuc "github.com/kailas-cloud/dateformat/internal/usecase/health"
	localeuc "github.com/kailas-cloud/dateformat/internal/usecase/locale"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
	"github.com/kailas-cloud/dateformat/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the format, parse, pattern and locale endpoints.
type Server struct {
	datetime      *datetimeuc.Service
	presets       *presetuc.Service
	locales       *localeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	datetime *datetimeuc.Service,
	presets *presetuc.Service,
	locales *localeuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		datetime: datetime,
		presets:  presets,
		locales:  locales,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPatternNotFound, http.StatusNotFound, ErrorCodePatternNotFound),
		sentinelHandler(domain.ErrUnknownLocale, http.StatusNotFound, ErrorCodeUnknownLocale),
		sentinelHandler(domain.ErrInvalidLocale, http.StatusBadRequest, ErrorCodeInvalidLocale),
		sentinelHandler(domain.ErrInvalidPattern, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidPatternName, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrMalformedInput, http.StatusUnprocessableEntity, ErrorCodeMalformedInput),
		sentinelHandler(domain.ErrBuiltinPattern, http.StatusConflict, ErrorCodeReadOnly),
		sentinelHandler(domain.ErrBuiltinLocale, http.StatusConflict, ErrorCodeReadOnly),
	}
	return s
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/format", s.FormatQuery)
		r.Post("/format", s.Format)
		r.Post("/parse", s.Parse)

		r.Get("/patterns", s.ListPatterns)
		r.Get("/patterns/{name}", s.GetPattern)
		r.Put("/patterns/{name}", s.DefinePattern)
		r.Delete("/patterns/{name}", s.DeletePattern)

		r.Get("/locales", s.ListLocales)
		r.Get("/locales/{name}", s.GetLocale)
		r.Put("/locales/{name}", s.RegisterLocale)
		r.Delete("/locales/{name}", s.DeleteLocale)
	})
}

// Format handles POST /api/v1/format.
func (s *Server) Format(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.format(w, r, req)
}

// FormatQuery handles GET /api/v1/format?pattern=...&time=....
func (s *Server) FormatQuery(w http.ResponseWriter, r *http.Request) {
	var (
		req     FormatRequest
		pattern *string
		name    *string
		locale  *string
	)
	q := r.URL.Query()
	binds := []struct {
		param string
		dest  any
	}{
		{"pattern", &pattern},
		{"name", &name},
		{"locale", &locale},
		{"utc", &req.UTC},
		{"time", &req.Time},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.param, q, b.dest); err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query parameter "+b.param)
			return
		}
	}
	req.Pattern = derefString(pattern)
	req.Name = derefString(name)
	req.Locale = derefString(locale)
	s.format(w, r, req)
}

func (s *Server) format(w http.ResponseWriter, r *http.Request, req FormatRequest) {
	var t time.Time
	if req.Time != nil {
		t = *req.Time
	}
	res, err := s.datetime.Format(r.Context(), datetimeuc.Request{
		Pattern: req.Pattern,
		Name:    req.Name,
		Locale:  req.Locale,
		UTC:     req.UTC,
	}, t)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FormatResponse{Text: res.Text, Pattern: res.Pattern})
}

// Parse handles POST /api/v1/parse.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.datetime.Parse(r.Context(), datetimeuc.Request{
		Pattern: req.Pattern,
		Name:    req.Name,
		Locale:  req.Locale,
		UTC:     req.UTC,
		Strict:  req.Strict,
	}, req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		Time:       res.Time.Format(time.RFC3339Nano),
		UnixMillis: res.Time.UnixMilli(),
		Pattern:    res.Pattern,
	})
}

// ListPatterns handles GET /api/v1/patterns.
func (s *Server) ListPatterns(w http.ResponseWriter, r *http.Request) {
	entries, err := s.presets.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entriesToResponse(entries))
}

// GetPattern handles GET /api/v1/patterns/{name}.
func (s *Server) GetPattern(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := s.presets.Resolve(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	_, builtin := dateformat.LookupNamed(name)
	writeJSON(w, http.StatusOK, patternToResponse(p, builtin))
}

// DefinePattern handles PUT /api/v1/patterns/{name}.
func (s *Server) DefinePattern(w http.ResponseWriter, r *http.Request) {
	var req DefinePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Pattern == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Pattern is required")
		return
	}

	p, created, err := s.presets.Define(r.Context(), presetuc.Definition{
		Name:        chi.URLParam(r, "name"),
		Pattern:     req.Pattern,
		Description: req.Description,
		UTC:         req.UTC,
		Locale:      req.Locale,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		w.Header().Set("Location", "/api/v1/patterns/"+p.Name())
		status = http.StatusCreated
	}
	writeJSON(w, status, patternToResponse(p, false))
}

// DeletePattern handles DELETE /api/v1/patterns/{name}.
func (s *Server) DeletePattern(w http.ResponseWriter, r *http.Request) {
	if err := s.presets.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLocales handles GET /api/v1/locales.
func (s *Server) ListLocales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LocaleListResponse{Locales: s.locales.Names()})
}

// GetLocale handles GET /api/v1/locales/{name}.
func (s *Server) GetLocale(w http.ResponseWriter, r *http.Request) {
	l, err := s.locales.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// RegisterLocale handles PUT /api/v1/locales/{name}. The path name wins over
// any name in the body.
func (s *Server) RegisterLocale(w http.ResponseWriter, r *http.Request) {
	var l domlocale.Locale
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	l.Name = chi.URLParam(r, "name")

	l, err := s.locales.Register(r.Context(), l)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// DeleteLocale handles DELETE /api/v1/locales/{name}.
func (s *Server) DeleteLocale(w http.ResponseWriter, r *http.Request) {
	if err := s.locales.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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
		Status:  string(report.Status),
		Version: version.String(),
		Checks:  checks,
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

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns the message of a domain error for the client.
// Anything else becomes "internal error" so storage details never leak.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrPatternNotFound,
		domain.ErrUnknownLocale,
		domain.ErrInvalidLocale,
		domain.ErrInvalidPattern,
		domain.ErrInvalidPatternName,
		domain.ErrMalformedInput,
		domain.ErrBuiltinPattern,
		domain.ErrBuiltinLocale,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
