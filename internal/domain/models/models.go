package models

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

type (
	User struct {
		ID           string
		Username     string
		Name         string
		PasswordHash string   // bcrypt, never leaves the service layer
		Posts        []string // ids of owned posts in creation order, may hold deleted ids
		CreatedAt    time.Time
	}

	// UserRef is the public projection of a User embedded into posts.
	UserRef struct {
		ID       string
		Username string
		Name     string
	}

	Post struct {
		ID        string
		Title     string
		Author    string // free-text attribution, not an identity
		URL       string
		Likes     int
		UserID    string   // owner, immutable after creation
		User      *UserRef // owner projection, filled on reads
		CreatedAt time.Time
	}

	// PostUpdate carries the mutable post fields; nil means "keep".
	PostUpdate struct {
		Title  *string
		Author *string
		URL    *string
		Likes  *int
	}

	// Identity is the acting user resolved from a bearer token.
	Identity struct {
		UserID   string
		Username string
	}
)

var (
	ErrInvalidData        = errors.New("invalid input data")
	ErrUnfound            = errors.New("unfound data")
	ErrEmpty              = errors.New("collection is empty")
	ErrConflict           = errors.New("duplicate entry")
	ErrForbidden          = errors.New("user is not owner of post")
	ErrMissingToken       = errors.New("token missing")
	ErrInvalidToken       = errors.New("token invalid")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func (u User) Ref() UserRef {
	return UserRef{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}

const idLength = 12

// NewID returns a random 24-char lowercase hex identifier.
func NewID() string {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}
