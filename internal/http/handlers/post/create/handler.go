package create

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	Create(ctx context.Context, actor models.Identity, post models.Post) (models.Post, error)
}

// HandlerCreatePost ожидает identity от auth middleware; владелец из тела запроса игнорируется
func HandlerCreatePost(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
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

		post, err := svc.Create(ctx, actor, req.ToDomain())
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}

		log.Debug().Str("post_id", post.ID).Str("user_id", actor.UserID).Msg("post created")
		httputils.WriteJSONResponse(w, http.StatusCreated, dto.PostFromDomain(post))
	}
}
