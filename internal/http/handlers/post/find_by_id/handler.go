package find_by_id

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	Get(ctx context.Context, id string) (models.Post, error)
}

func HandlerGetPost(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := svc.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.PostFromDomain(post))
	}
}
