package translation

import (
	"errors"
	"strings"
)

// Error kinds. Every failure returned by a Gateway or a Provider matches
// exactly one of these through errors.Is.
var (
	ErrInvalidInput              = errors.New("invalid translation input")
	ErrUnconfiguredProvider      = errors.New("translation provider is not configured")
	ErrProviderUnavailable       = errors.New("translation provider unavailable")
	ErrProviderResponseMalformed = errors.New("translation provider response malformed")
)

// Error is a normalized translation failure. Detail is safe to show to
// callers: it never carries response bodies, request URLs, or credentials.
type Error struct {
	Kind     error
	Provider string
	Detail   string

	timeout bool
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	kind := e.Kind
	if kind == nil {
		kind = ErrProviderUnavailable
	}

	var b strings.Builder
	b.WriteString(kind.Error())
	if e.Provider != "" {
		b.WriteString(" (")
		b.WriteString(e.Provider)
		b.WriteString(")")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// Timeout reports whether the outbound call hit its deadline.
func (e *Error) Timeout() bool {
	return e != nil && e.timeout
}

func invalidInput(detail string) *Error {
	return &Error{Kind: ErrInvalidInput, Detail: detail}
}

func unconfigured(provider, detail string) *Error {
	return &Error{Kind: ErrUnconfiguredProvider, Provider: provider, Detail: detail}
}

func unavailable(provider, detail string) *Error {
	return &Error{Kind: ErrProviderUnavailable, Provider: provider, Detail: detail}
}

func timedOut(provider string) *Error {
	return &Error{Kind: ErrProviderUnavailable, Provider: provider, Detail: "request timed out", timeout: true}
}

func malformed(provider, detail string) *Error {
	return &Error{Kind: ErrProviderResponseMalformed, Provider: provider, Detail: detail}
}

// ErrorKind returns a stable label for logging and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUnconfiguredProvider):
		return "unconfigured_provider"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrProviderResponseMalformed):
		return "provider_response_malformed"
	default:
		return "unknown"
	}
}

// IsTimeout reports whether err is a provider deadline failure.
func IsTimeout(err error) bool {
	var translationErr *Error
	if errors.As(err, &translationErr) {
		return translationErr.Timeout()
	}
	return false
}
