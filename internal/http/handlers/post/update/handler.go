package update

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
	Update(ctx context.Context, actor models.Identity, id string, upd models.PostUpdate) (models.Post, error)
}

func HandlerUpdatePost(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actor, ok := httputils.IdentityFromContext(ctx)
		if !ok {
			httputils.WriteServiceError(w, log, models.ErrMissingToken)
			return
		}

		var req dto.PostRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		post, err := svc.Update(ctx, actor, mux.Vars(r)["id"], req.ToUpdate())
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.PostFromDomain(post))
	}
}
