package login

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

type Authentication interface {
	Login(ctx context.Context, username, password string) (string, models.User, error)
}

func HandlerLogin(auth Authentication, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		token, user, err := auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Token:    token,
			Username: user.Username,
			Name:     user.Name,
		})
	}
}
