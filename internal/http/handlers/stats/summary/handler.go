package summary

import (
	"context"
	"net/http"

	"bloglist/internal/domain/analytics"
	"bloglist/internal/http/dto"
	"bloglist/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceBlogs interface {
	Stats(ctx context.Context) (analytics.Summary, error)
}

func HandlerStats(svc ServiceBlogs, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Stats(r.Context())
		if err != nil {
			httputils.WriteServiceError(w, log, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.StatsFromDomain(summary))
	}
}
