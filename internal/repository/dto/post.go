package dto

import (
	"database/sql"
	"time"

	"bloglist/internal/domain/models"
)

type (
	PostDB struct {
		ID        string    `db:"id"`
		Title     string    `db:"title"`
		Author    string    `db:"author"`
		URL       string    `db:"url"`
		Likes     int       `db:"likes"`
		UserID    string    `db:"user_id"`
		CreatedAt time.Time `db:"created_at"`

		// LEFT JOIN users, NULL when the owner row is gone
		OwnerUsername sql.NullString `db:"owner_username"`
		OwnerName     sql.NullString `db:"owner_name"`
	}
)

// ToDomain преобразует DTO БД в доменную модель
func (d *PostDB) ToDomain() models.Post {
	p := models.Post{
		ID:        d.ID,
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.URL,
		Likes:     d.Likes,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
	if d.OwnerUsername.Valid {
		p.User = &models.UserRef{
			ID:       d.UserID,
			Username: d.OwnerUsername.String,
			Name:     d.OwnerName.String,
		}
	}
	return p
}

// PostDBFromDomain преобразует доменную модель в DTO БД
func PostDBFromDomain(p models.Post) PostDB {
	return PostDB{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Likes:     p.Likes,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
}
