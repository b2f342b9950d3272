package list

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	List(ctx context.Context) ([]models.Post, error)
}

func HandlerListPosts(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.PostsFromDomain(posts))
	}
}
