package register

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

type Authentication interface {
	Register(ctx context.Context, username, name, password string) (models.User, error)
}

func HandlerRegisterUser(auth Authentication, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		user, err := auth.Register(r.Context(), req.Username, req.Name, req.Password)
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserFromDomain(user))
	}
}
