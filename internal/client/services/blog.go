package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogapi/internal/client/client"
	"github.com/dmitrijs2005/blogapi/internal/common"
)

type BlogService interface {
	Create(ctx context.Context, blog client.NewBlog) (*client.Blog, error)
	List(ctx context.Context) ([]client.Blog, error)
}

type blogService struct {
	client client.Client
}

func NewBlogService(c client.Client) BlogService {
	return &blogService{client: c}
}

// Create checks required fields locally before calling the server, which
// applies the same rule.
func (s *blogService) Create(ctx context.Context, blog client.NewBlog) (*client.Blog, error) {
	if strings.TrimSpace(blog.Title) == "" ||
		strings.TrimSpace(blog.Description) == "" ||
		strings.TrimSpace(blog.AuthorName) == "" {
		return nil, common.ErrMissingRequiredField
	}
	return s.client.CreateBlog(ctx, blog)
}

func (s *blogService) List(ctx context.Context) ([]client.Blog, error) {
	return s.client.ListBlogs(ctx)
}
