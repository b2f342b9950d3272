package dto

import (
	"bloglist/internal/domain/models"
)

// Request
type (
	// PostRequest is used for both create and update. Pointers tell an absent
	// field from a zero one. id and user in the payload are ignored.
	PostRequest struct {
		Title  *string `json:"title"`
		Author *string `json:"author"`
		URL    *string `json:"url"`
		Likes  *int    `json:"likes"`
	}
)

// Response
type (
	UserRefResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}

	PostResponse struct {
		ID     string           `json:"id"`
		Title  string           `json:"title"`
		Author string           `json:"author"`
		URL    string           `json:"url"`
		Likes  int              `json:"likes"`
		User   *UserRefResponse `json:"user"`
	}

	// PostSummaryResponse is a post nested into a user, without the owner.
	PostSummaryResponse struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
	}
)

// Request → Domain
func (r PostRequest) ToDomain() models.Post {
	p := models.Post{}
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Author != nil {
		p.Author = *r.Author
	}
	if r.URL != nil {
		p.URL = *r.URL
	}
	if r.Likes != nil {
		p.Likes = *r.Likes
	}
	return p
}

func (r PostRequest) ToUpdate() models.PostUpdate {
	return models.PostUpdate{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  r.Likes,
	}
}

// Domain → Response
func PostFromDomain(p models.Post) PostResponse {
	resp := PostResponse{
		ID:     p.ID,
		Title:  p.Title,
		Author: p.Author,
		URL:    p.URL,
		Likes:  p.Likes,
	}
	if p.User != nil {
		resp.User = &UserRefResponse{
			ID:       p.User.ID,
			Username: p.User.Username,
			Name:     p.User.Name,
		}
	}
	return resp
}

func PostsFromDomain(posts []models.Post) []PostResponse {
	resp := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, PostFromDomain(p))
	}
	return resp
}

func PostSummaryFromDomain(p models.Post) PostSummaryResponse {
	return PostSummaryResponse{
		ID:     p.ID,
		Title:  p.Title,
		Author: p.Author,
		URL:    p.URL,
		Likes:  p.Likes,
	}
}
