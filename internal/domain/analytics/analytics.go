// Package analytics computes aggregate statistics over a snapshot of posts.
// All functions are pure. Ties are broken in favour of whatever appears first
// in the input: the first post with the highest like count, or the author
// whose first post comes earliest among those sharing the maximum.
package analytics

import (
	"fmt"

	"bloglist/internal/domain/models"
)

type (
	AuthorBlogs struct {
		Author string
		Blogs  int
	}

	AuthorLikes struct {
		Author string
		Likes  int
	}

	// Summary bundles every statistic. Pointer fields are nil for an empty snapshot.
	Summary struct {
		TotalLikes   int
		FavoriteBlog *models.Post
		MostBlogs    *AuthorBlogs
		MostLikes    *AuthorLikes
	}
)

// TotalLikes returns 0 for an empty collection.
func TotalLikes(posts []models.Post) int {
	total := 0
	for _, p := range posts {
		total += p.Likes
	}
	return total
}

// FavoriteBlog returns models.ErrEmpty for an empty collection.
func FavoriteBlog(posts []models.Post) (models.Post, error) {
	if len(posts) == 0 {
		return models.Post{}, fmt.Errorf("favorite blog: %w", models.ErrEmpty)
	}

	best := 0
	for i := 1; i < len(posts); i++ {
		if posts[i].Likes > posts[best].Likes {
			best = i
		}
	}
	return posts[best], nil
}

// MostBlogs returns models.ErrEmpty for an empty collection.
func MostBlogs(posts []models.Post) (AuthorBlogs, error) {
	groups := groupByAuthor(posts)
	if len(groups) == 0 {
		return AuthorBlogs{}, fmt.Errorf("most blogs: %w", models.ErrEmpty)
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if g.blogs > best.blogs {
			best = g
		}
	}
	return AuthorBlogs{Author: best.author, Blogs: best.blogs}, nil
}

// MostLikes returns models.ErrEmpty for an empty collection.
func MostLikes(posts []models.Post) (AuthorLikes, error) {
	groups := groupByAuthor(posts)
	if len(groups) == 0 {
		return AuthorLikes{}, fmt.Errorf("most likes: %w", models.ErrEmpty)
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if g.likes > best.likes {
			best = g
		}
	}
	return AuthorLikes{Author: best.author, Likes: best.likes}, nil
}

func Summarize(posts []models.Post) Summary {
	s := Summary{TotalLikes: TotalLikes(posts)}
	if len(posts) == 0 {
		return s
	}

	// non-empty input: the errors below cannot occur
	fav, _ := FavoriteBlog(posts)
	blogs, _ := MostBlogs(posts)
	likes, _ := MostLikes(posts)

	s.FavoriteBlog = &fav
	s.MostBlogs = &blogs
	s.MostLikes = &likes
	return s
}

type authorGroup struct {
	author string
	blogs  int
	likes  int
}

// groupByAuthor keeps groups in order of each author's first appearance.
// Authors compare by exact string, so "" is a group of its own.
func groupByAuthor(posts []models.Post) []authorGroup {
	index := make(map[string]int, len(posts))
	groups := make([]authorGroup, 0, len(posts))

	for _, p := range posts {
		i, ok := index[p.Author]
		if !ok {
			i = len(groups)
			index[p.Author] = i
			groups = append(groups, authorGroup{author: p.Author})
		}
		groups[i].blogs++
		groups[i].likes += p.Likes
	}
	return groups
}
