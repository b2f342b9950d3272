package delete_by_id

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	Delete(ctx context.Context, actor models.Identity, id string) error
}

func HandlerDeletePost(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actor, ok := httputils.IdentityFromContext(ctx)
		if !ok {
			httputils.WriteServiceError(w, log, models.ErrMissingToken)
			return
		}

		id := mux.Vars(r)["id"]
		if err := svc.Delete(ctx, actor, id); err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		log.Debug().Str("post_id", id).Str("user_id", actor.UserID).Msg("post deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}
