package chi

import (
	"time"

	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
)

// ErrorCode is the machine-readable error code returned in ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodePatternNotFound  ErrorCode = "pattern_not_found"
	ErrorCodeUnknownLocale    ErrorCode = "unknown_locale"
	ErrorCodeInvalidLocale    ErrorCode = "invalid_locale"
	ErrorCodeMalformedInput   ErrorCode = "malformed_input"
	ErrorCodeReadOnly         ErrorCode = "builtin_read_only"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// FormatRequest is the body of POST /api/v1/format.
// Exactly one of Pattern and Name must be set. A missing Time renders now.
type FormatRequest struct {
	Pattern string     `json:"pattern,omitempty"`
	Name    string     `json:"name,omitempty"`
	Locale  string     `json:"locale,omitempty"`
	UTC     *bool      `json:"utc,omitempty"`
	Time    *time.Time `json:"time,omitempty"`
}

// FormatResponse is the result of a format call.
type FormatResponse struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	Pattern string `json:"pattern,omitempty"`
	Name    string `json:"name,omitempty"`
	Locale  string `json:"locale,omitempty"`
	UTC     *bool  `json:"utc,omitempty"`
	Strict  *bool  `json:"strict,omitempty"`
	Text    string `json:"text"`
}

// ParseResponse is the result of a parse call.
type ParseResponse struct {
	Time       string `json:"time"`
	UnixMillis int64  `json:"unix_ms"`
	Pattern    string `json:"pattern"`
}

// DefinePatternRequest is the body of PUT /api/v1/patterns/{name}.
type DefinePatternRequest struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description,omitempty"`
	UTC         bool   `json:"utc,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// PatternResponse describes a predefined or stored pattern.
type PatternResponse struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Description string `json:"description,omitempty"`
	UTC         bool   `json:"utc"`
	Locale      string `json:"locale,omitempty"`
	Builtin     bool   `json:"builtin"`
	CreatedAt   int64  `json:"created_at,omitempty"`
	UpdatedAt   int64  `json:"updated_at,omitempty"`
}

// PatternListResponse is the body of GET /api/v1/patterns.
type PatternListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
	Count    int               `json:"count"`
}

// LocaleListResponse is the body of GET /api/v1/locales.
type LocaleListResponse struct {
	Locales []string `json:"locales"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func patternToResponse(p dompreset.Preset, builtin bool) PatternResponse {
	return PatternResponse{
		Name:        p.Name(),
		Pattern:     p.Pattern(),
		Description: p.Description(),
		UTC:         p.UTC(),
		Locale:      p.Locale(),
		Builtin:     builtin,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func entriesToResponse(entries []presetuc.Entry) PatternListResponse {
	out := make([]PatternResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, patternToResponse(e.Preset, e.Builtin))
	}
	return PatternListResponse{Patterns: out, Count: len(out)}
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
