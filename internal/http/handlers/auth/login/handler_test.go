package login

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bloglist/internal/domain/models"
	"bloglist/internal/http/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthentication(ctrl)
	log := zerolog.Nop()

	tests := []struct {
		name         string
		setupMock    func()
		requestBody  string
		expectedCode int
		expectedBody string
	}{
		{
			name: "successful login",
			setupMock: func() {
				mockAuth.EXPECT().
					Login(gomock.Any(), "root", "salasana").
					Return("jwt-token", models.User{ID: "u1", Username: "root", Name: "Superuser"}, nil)
			},
			requestBody:  `{"username":"root","password":"salasana"}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"jwt-token","username":"root","name":"Superuser"}`,
		},
		{
			name: "wrong password",
			setupMock: func() {
				mockAuth.EXPECT().
					Login(gomock.Any(), "root", "wrong").
					Return("", models.User{}, models.ErrInvalidCredentials)
			},
			requestBody:  `{"username":"root","password":"wrong"}`,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"invalid username or password"}`,
		},
		{
			name:         "malformed body",
			setupMock:    func() {},
			requestBody:  `{"username":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			setupMock: func() {
				mockAuth.EXPECT().
					Login(gomock.Any(), "root", "salasana").
					Return("", models.User{}, errors.New("connection reset"))
			},
			requestBody:  `{"username":"root","password":"salasana"}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			HandlerLogin(mockAuth, &log)(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
