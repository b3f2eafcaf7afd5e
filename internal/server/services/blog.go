package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/repomanager"
)

// BlogInput is the caller-supplied part of a blog post.
type BlogInput struct {
	Title       string
	Description string
	AuthorName  string
	BlogImage   *string
	PublishDate *string
	TotalLikes  *float64
}

type BlogService struct {
	repomanager repomanager.RepositoryManager
}

func NewBlogService(m repomanager.RepositoryManager) *BlogService {
	return &BlogService{repomanager: m}
}

// Create validates and stores a post. Title, description and author name
// must be non-blank.
func (s *BlogService) Create(ctx context.Context, in BlogInput) (*models.Blog, error) {
	if isBlank(in.Title) || isBlank(in.Description) || isBlank(in.AuthorName) {
		return nil, common.ErrMissingRequiredField
	}

	blog := &models.Blog{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		BlogImage:   in.BlogImage,
		AuthorName:  in.AuthorName,
		PublishDate: in.PublishDate,
		TotalLikes:  in.TotalLikes,
		CreatedAt:   now().UTC(),
	}

	stored, err := s.repomanager.Blogs().Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return stored, nil
}

// List returns all posts. The result is never nil.
func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.repomanager.Blogs().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
