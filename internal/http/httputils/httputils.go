package httputils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bloglist/internal/domain/models"

	"github.com/rs/zerolog"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderAuthorization   = "Authorization"
	HeaderRetryAfter      = "Retry-After"
	HeaderXForwardedFor   = "X-Forwarded-For"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"

	maxBodyBytes = 1 << 20
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, ErrorResponse{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps domain errors to responses. Anything outside the
// known taxonomy is logged and answered with a generic 500.
func WriteServiceError(w http.ResponseWriter, log *zerolog.Logger, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		WriteJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, models.ErrInvalidData):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrMissingToken):
		WriteJSONError(w, http.StatusUnauthorized, "token missing")
	case errors.Is(err, models.ErrInvalidToken):
		WriteJSONError(w, http.StatusUnauthorized, "token invalid")
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, models.ErrForbidden):
		// 401 как в исходном API, текст отличается от ошибок токена
		WriteJSONError(w, http.StatusUnauthorized, "forbidden: only the creator can modify this post")
	case errors.Is(err, models.ErrUnfound):
		WriteJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrConflict):
		WriteJSONError(w, http.StatusConflict, "expected `username` to be unique")
	default:
		if log != nil {
			log.Error().Err(err).Msg("unexpected service error")
		}
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// DecodeJSON reads one JSON value from the request body into dst. Bodies over 1 MiB are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return models.ErrInvalidData
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return &models.ValidationError{Fields: map[string]string{"body": "malformed JSON: " + err.Error()}}
	}
	return nil
}
