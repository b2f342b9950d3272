package dto

import (
	"time"

	"bloglist/internal/domain/models"
)

// DTO БД для таблицы users
type (
	UserDB struct {
		ID           string    `db:"id"`
		Username     string    `db:"username"`
		Name         string    `db:"name"`
		PasswordHash string    `db:"password_hash"`
		CreatedAt    time.Time `db:"created_at"`
	}

	// UserPostDB is one row of the ordered user -> post link table.
	UserPostDB struct {
		UserID   string `db:"user_id"`
		PostID   string `db:"post_id"`
		Position int    `db:"position"`
	}
)

// UserDBToDomain собирает доменного пользователя; posts - id постов в порядке position
func UserDBToDomain(u UserDB, posts []string) models.User {
	if posts == nil {
		posts = []string{}
	}
	return models.User{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Posts:        posts,
		CreatedAt:    u.CreatedAt,
	}
}

func UserDBFromDomain(u models.User) UserDB {
	return UserDB{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
