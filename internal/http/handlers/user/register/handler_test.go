package register

import (
	"fmt"
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

func TestHandlerRegisterUser(t *testing.T) {
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
			name: "created without password hash",
			setupMock: func() {
				mockAuth.EXPECT().
					Register(gomock.Any(), "root", "Superuser", "salasana").
					Return(models.User{ID: "u1", Username: "root", Name: "Superuser", PasswordHash: "$2a$10$x"}, nil)
			},
			requestBody:  `{"username":"root","name":"Superuser","password":"salasana"}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"u1","username":"root","name":"Superuser","blogs":[]}`,
		},
		{
			name: "duplicate username",
			setupMock: func() {
				mockAuth.EXPECT().
					Register(gomock.Any(), "root", "", "salasana").
					Return(models.User{}, fmt.Errorf("failed to create user: %w", models.ErrConflict))
			},
			requestBody:  `{"username":"root","password":"salasana"}`,
			expectedCode: http.StatusConflict,
			expectedBody: "{\"error\":\"expected `username` to be unique\"}",
		},
		{
			name: "short username",
			setupMock: func() {
				mockAuth.EXPECT().
					Register(gomock.Any(), "äb", "", "salasana").
					Return(models.User{}, models.ValidateRegistration("äb", "salasana"))
			},
			requestBody:  `{"username":"äb","password":"salasana"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation failed","fields":{"username":"username must be at least 3 characters long"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			HandlerRegisterUser(mockAuth, &log)(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
