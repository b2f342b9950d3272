package dto

import (
	"bloglist/internal/domain/analytics"
)

type (
	FavoriteBlogResponse struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Likes  int    `json:"likes"`
	}

	MostBlogsResponse struct {
		Author string `json:"author"`
		Blogs  int    `json:"blogs"`
	}

	MostLikesResponse struct {
		Author string `json:"author"`
		Likes  int    `json:"likes"`
	}

	// StatsResponse: on an empty collection only totalLikes is set, the rest are null.
	StatsResponse struct {
		TotalLikes   int                   `json:"totalLikes"`
		FavoriteBlog *FavoriteBlogResponse `json:"favoriteBlog"`
		MostBlogs    *MostBlogsResponse    `json:"mostBlogs"`
		MostLikes    *MostLikesResponse    `json:"mostLikes"`
	}
)

func StatsFromDomain(s analytics.Summary) StatsResponse {
	resp := StatsResponse{TotalLikes: s.TotalLikes}
	if s.FavoriteBlog != nil {
		resp.FavoriteBlog = &FavoriteBlogResponse{
			Title:  s.FavoriteBlog.Title,
			Author: s.FavoriteBlog.Author,
			Likes:  s.FavoriteBlog.Likes,
		}
	}
	if s.MostBlogs != nil {
		resp.MostBlogs = &MostBlogsResponse{Author: s.MostBlogs.Author, Blogs: s.MostBlogs.Blogs}
	}
	if s.MostLikes != nil {
		resp.MostLikes = &MostLikesResponse{Author: s.MostLikes.Author, Likes: s.MostLikes.Likes}
	}
	return resp
}
