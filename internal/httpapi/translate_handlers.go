package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"horse.fit/translategw/internal/db"
	"horse.fit/translategw/internal/langdetect"
	"horse.fit/translategw/internal/language"
	"horse.fit/translategw/internal/translation"
)

type translateRequest struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

type detectRequest struct {
	Text string `json:"text"`
}

type languagesResponse struct {
	Provider   string                       `json:"provider"`
	Configured bool                         `json:"configured"`
	Languages  []translation.LanguageOption `json:"languages"`
}

type detectResponse struct {
	Detected   bool    `json:"detected"`
	Language   *string `json:"language"`
	Name       string  `json:"name,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// statusTranslation is a status with its translation appended for display.
// The stored status is never modified.
type statusTranslation struct {
	ID             int64                         `json:"id,string"`
	Text           string                        `json:"text"`
	Language       *string                       `json:"language"`
	TargetLanguage string                        `json:"target_language"`
	Translation    translation.TranslationResult `json:"translation"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	return s.translate(c, translateRequest{
		Text: c.QueryParam("text"),
		To:   c.QueryParam("to"),
	})
}

func (s *Server) handleTranslateJSON(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object with text and to"})
	}
	return s.translate(c, req)
}

func (s *Server) translate(c echo.Context, req translateRequest) error {
	fieldErrors := map[string]string{}
	if strings.TrimSpace(req.Text) == "" {
		fieldErrors["text"] = "is required"
	}
	if strings.TrimSpace(req.To) == "" {
		fieldErrors["to"] = "is required"
	}
	if len(fieldErrors) > 0 {
		return failValidation(c, fieldErrors)
	}

	result, err := s.gateway.Translate(c.Request().Context(), req.Text, req.To)
	if err != nil {
		return s.translationFailure(c, err, "to")
	}
	return success(c, result)
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, languagesResponse{
		Provider:   s.gateway.ProviderName(),
		Configured: s.gateway.Err() == nil,
		Languages:  s.gateway.Catalog().Options(),
	})
}

func (s *Server) handleDetect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object with text"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return failValidation(c, map[string]string{"text": "is required"})
	}

	result, ok := langdetect.Detect(req.Text)
	if !ok {
		return success(c, detectResponse{Detected: false})
	}
	return success(c, detectResponse{
		Detected:   true,
		Language:   &result.Language,
		Name:       result.Name,
		Confidence: result.Confidence,
	})
}

func (s *Server) handleStatusTranslate(c echo.Context) error {
	if s.statuses == nil {
		return errorResponse(c, http.StatusServiceUnavailable, "Status translation is not configured")
	}

	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return failValidation(c, map[string]string{"id": "must be a positive integer"})
	}

	ctx := c.Request().Context()
	status, err := s.statuses.GetStatus(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return failNotFound(c, "Status not found")
		}
		s.logger.Error().Err(err).Int64("status_id", id).Msg("load status failed")
		return internalError(c, "Failed to load status")
	}

	target := s.resolveTarget(c)
	result, err := s.gateway.Translate(ctx, status.Text, target)
	if err != nil {
		return s.translationFailure(c, err, "status")
	}

	return success(c, statusTranslation{
		ID:             status.ID,
		Text:           status.Text + "\n" + result.TranslatedText,
		Language:       status.Language,
		TargetLanguage: target,
		Translation:    result,
	})
}

// resolveTarget picks the status translation target: an explicit ?to=, then
// the best Accept-Language match in the active catalog, then the configured
// default locale.
func (s *Server) resolveTarget(c echo.Context) string {
	if to := strings.TrimSpace(c.QueryParam("to")); to != "" {
		return to
	}
	codes := s.gateway.Catalog().Codes()
	if code, ok := language.MatchAcceptLanguage(c.Request().Header.Get("Accept-Language"), codes); ok {
		return code
	}
	return s.opts.DefaultLocale
}

// translationFailure maps a gateway error kind to a JSend response. Provider
// details stay in the log.
func (s *Server) translationFailure(c echo.Context, err error, field string) error {
	s.logger.Warn().
		Err(err).
		Str("kind", translation.ErrorKind(err)).
		Str("provider", s.gateway.ProviderName()).
		Msg("translate request failed")

	switch {
	case errors.Is(err, translation.ErrInvalidInput):
		message := "is invalid"
		var translationErr *translation.Error
		if errors.As(err, &translationErr) && translationErr.Detail != "" {
			message = translationErr.Detail
		}
		return failValidation(c, map[string]string{field: message})
	case errors.Is(err, translation.ErrUnconfiguredProvider):
		return errorResponse(c, http.StatusServiceUnavailable, "Translation is not configured")
	case errors.Is(err, translation.ErrProviderUnavailable):
		if translation.IsTimeout(err) {
			return errorResponse(c, http.StatusGatewayTimeout, "Translation provider unavailable")
		}
		return errorResponse(c, http.StatusBadGateway, "Translation provider unavailable")
	case errors.Is(err, translation.ErrProviderResponseMalformed):
		return errorResponse(c, http.StatusBadGateway, "Translation provider returned an unexpected response")
	default:
		return internalError(c, "Translation failed")
	}
}
