package summary

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/domain/analytics"
	"bloglist/internal/domain/models"
	"bloglist/internal/http/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockServiceBlogs(ctrl)
	log := zerolog.Nop()

	tests := []struct {
		name         string
		setupMock    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "populated",
			setupMock: func() {
				mockSvc.EXPECT().Stats(gomock.Any()).Return(analytics.Summary{
					TotalLikes:   36,
					FavoriteBlog: &models.Post{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
					MostBlogs:    &analytics.AuthorBlogs{Author: "Robert C. Martin", Blogs: 3},
					MostLikes:    &analytics.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"totalLikes": 36,
				"favoriteBlog": {"title": "Canonical string reduction", "author": "Edsger W. Dijkstra", "likes": 12},
				"mostBlogs": {"author": "Robert C. Martin", "blogs": 3},
				"mostLikes": {"author": "Edsger W. Dijkstra", "likes": 17}
			}`,
		},
		{
			name: "empty collection",
			setupMock: func() {
				mockSvc.EXPECT().Stats(gomock.Any()).Return(analytics.Summary{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"totalLikes":0,"favoriteBlog":null,"mostBlogs":null,"mostLikes":null}`,
		},
		{
			name: "storage failure",
			setupMock: func() {
				mockSvc.EXPECT().Stats(gomock.Any()).Return(analytics.Summary{}, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()

			HandlerStats(mockSvc, &log)(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
