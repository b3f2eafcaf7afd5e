package client

import (
	"context"
	"time"
)

// Blog is a post as returned by the server.
type Blog struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BlogImage   *string   `json:"blog_image,omitempty"`
	AuthorName  string    `json:"author_name"`
	PublishDate *string   `json:"publish_date,omitempty"`
	TotalLikes  *float64  `json:"total_likes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBlog is the payload for CreateBlog.
type NewBlog struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AuthorName  string   `json:"author_name"`
	BlogImage   *string  `json:"blog_image,omitempty"`
	PublishDate *string  `json:"publish_date,omitempty"`
	TotalLikes  *float64 `json:"total_likes,omitempty"`
}

type Client interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout()
	CreateBlog(ctx context.Context, blog NewBlog) (*Blog, error)
	ListBlogs(ctx context.Context) ([]Blog, error)
	Ping(ctx context.Context) error
}
