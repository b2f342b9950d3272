package dto

import (
	"bloglist/internal/domain/models"
	"bloglist/internal/services/blogs"
)

// Request
type (
	RegisterRequest struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
)

// Response
type (
	// UserResponse never carries the password hash.
	UserResponse struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Name     string   `json:"name"`
		Blogs    []string `json:"blogs"`
	}

	UserWithBlogsResponse struct {
		ID       string                `json:"id"`
		Username string                `json:"username"`
		Name     string                `json:"name"`
		Blogs    []PostSummaryResponse `json:"blogs"`
	}
)

func UserFromDomain(u models.User) UserResponse {
	ids := u.Posts
	if ids == nil {
		ids = []string{}
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Blogs:    ids,
	}
}

func UsersWithBlogsFromDomain(users []blogs.UserWithPosts) []UserWithBlogsResponse {
	resp := make([]UserWithBlogsResponse, 0, len(users))
	for _, u := range users {
		owned := make([]PostSummaryResponse, 0, len(u.Posts))
		for _, p := range u.Posts {
			owned = append(owned, PostSummaryFromDomain(p))
		}
		resp = append(resp, UserWithBlogsResponse{
			ID:       u.User.ID,
			Username: u.User.Username,
			Name:     u.User.Name,
			Blogs:    owned,
		})
	}
	return resp
}
