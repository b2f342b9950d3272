package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/httputils"
	"bloglist/internal/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMiddlewareAuth(t *testing.T) {
	log := zerolog.New(io.Discard)

	tests := []struct {
		name       string
		header     string
		mockSetup  func(*mocks.MockAuthenticator)
		wantStatus int
		wantNext   bool
	}{
		{
			name:   "valid token reaches handler",
			header: "Bearer good",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate("Bearer good").Return(models.Identity{UserID: "u1", Username: "root"}, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:   "missing header",
			header: "",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate("").Return(models.Identity{}, models.ErrMissingToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "bad token",
			header: "Bearer bad",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Authenticate("Bearer bad").Return(models.Identity{}, models.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockAuthenticator(ctrl)
			tt.mockSetup(m)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := httputils.IdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "u1", id.UserID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/posts", nil)
			if tt.header != "" {
				req.Header.Set(httputils.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()

			MiddlewareAuth(m, &log)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}
