package auth

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"bloglist/internal/domain/models"
	"bloglist/internal/mocks"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testSecretKey = base64.StdEncoding.EncodeToString([]byte("test-secret-key-32-bytes-long!!!"))

func newTestAuth(t *testing.T, storage UserStorage, exp time.Duration) *Authentication {
	t.Helper()
	a, err := NewAuthentication(storage, testSecretKey, exp, WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	return a
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestNewAuthentication_ShortSecret(t *testing.T) {
	_, err := NewAuthentication(nil, base64.StdEncoding.EncodeToString([]byte("short")), 0)
	require.Error(t, err)

	_, err = NewAuthentication(nil, "not base64 !!", 0)
	require.Error(t, err)
}

func TestAuth_Register(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		mockSetup   func(*mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:     "new user is stored with a bcrypt hash",
			username: "root",
			password: "salasana",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
						assert.NotEmpty(t, u.ID)
						assert.Equal(t, "Superuser", u.Name)
						assert.NotEqual(t, "salasana", u.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("salasana")))
						assert.False(t, u.CreatedAt.IsZero())
						return u, nil
					})
			},
		},
		{
			name:     "duplicate username",
			username: "root",
			password: "salasana",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					Return(models.User{}, models.ErrConflict)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
		{
			name:        "short username never reaches storage",
			username:    "ro",
			password:    "salasana",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:        "missing password",
			username:    "mluukkai",
			password:    "",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			a := newTestAuth(t, mockStorage, 0)
			got, err := a.Register(context.Background(), tt.username, "Superuser", tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, got.Username)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	stored := models.User{
		ID:           "64f0c2a1b2c3d4e5f6a7b8c9",
		Username:     "root",
		Name:         "Superuser",
		PasswordHash: hashOf(t, "salasana"),
	}

	tests := []struct {
		name        string
		username    string
		password    string
		mockSetup   func(*mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:     "valid credentials",
			username: "root",
			password: "salasana",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().UserGetByUsername(gomock.Any(), "root").Return(stored, nil).Times(1)
			},
		},
		{
			name:     "wrong password",
			username: "root",
			password: "wrong",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().UserGetByUsername(gomock.Any(), "root").Return(stored, nil).Times(1)
			},
			wantErr:     true,
			expectedErr: models.ErrInvalidCredentials,
		},
		{
			name:     "unknown username looks the same as a wrong password",
			username: "ghost",
			password: "salasana",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().UserGetByUsername(gomock.Any(), "ghost").Return(models.User{}, models.ErrUnfound).Times(1)
			},
			wantErr:     true,
			expectedErr: models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			a := newTestAuth(t, mockStorage, 0)
			token, user, err := a.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)

			identity, err := a.Validate(token)
			require.NoError(t, err, "issued token must validate")
			assert.Equal(t, stored.ID, identity.UserID)
			assert.Equal(t, "root", identity.Username)
		})
	}
}

func TestAuth_Validate(t *testing.T) {
	user := models.User{ID: "64f0c2a1b2c3d4e5f6a7b8c9", Username: "root"}
	otherKey := base64.StdEncoding.EncodeToString([]byte("another-secret-key-32-bytes-long"))

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "valid token without expiry",
			token: func(t *testing.T) string {
				tok, err := newTestAuth(t, nil, 0).jwtGenerate(user)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok, err := newTestAuth(t, nil, -1*time.Hour).jwtGenerate(user)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name: "signed with another secret",
			token: func(t *testing.T) string {
				a, err := NewAuthentication(nil, otherKey, 0)
				require.NoError(t, err)
				tok, err := a.jwtGenerate(user)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "invalid.token.here"
			},
			wantErr: true,
		},
		{
			name: "no user id claim",
			token: func(t *testing.T) string {
				key, _ := base64.StdEncoding.DecodeString(testSecretKey)
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "root"}).SignedString(key)
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAuth(t, nil, 0)
			identity, err := a.Validate(tt.token(t))

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, identity.UserID)
		})
	}
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth_Authenticate(t *testing.T) {
	a := newTestAuth(t, nil, 0)
	token, err := a.jwtGenerate(models.User{ID: "64f0c2a1b2c3d4e5f6a7b8c9", Username: "root"})
	require.NoError(t, err)

	id, err := a.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2a1b2c3d4e5f6a7b8c9", id.UserID)
	assert.Equal(t, "root", id.Username)

	_, err = a.Authenticate(token)
	assert.ErrorIs(t, err, models.ErrMissingToken)

	_, err = a.Authenticate("Bearer " + token + "x")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
