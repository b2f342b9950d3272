package auth

import (
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=middleware.go -destination=../../../../mocks/mock_authenticator.go -package=mocks
type Authenticator interface {
	Authenticate(header string) (models.Identity, error)
}

// MiddlewareAuth пропускает запрос дальше только с валидным Bearer токеном,
// identity кладётся в контекст запроса
func MiddlewareAuth(auth Authenticator, log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.Authenticate(r.Header.Get(httputils.HeaderAuthorization))
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("authentication rejected")
				httputils.WriteServiceError(w, log, err)
				return
			}

			ctx := httputils.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
