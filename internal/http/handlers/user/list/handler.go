package list

import (
	"context"
	"net/http"

	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"
	"bloglist/internal/services/blogs"

	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	ListUsers(ctx context.Context) ([]blogs.UserWithPosts, error)
}

func HandlerListUsers(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.UsersWithBlogsFromDomain(users))
	}
}
