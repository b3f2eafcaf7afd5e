package blogs

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// InMemoryRepository keeps posts in insertion order.
type InMemoryRepository struct {
	mu    sync.RWMutex
	blogs []models.Blog
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blogs = append(r.blogs, *blog)

	return blog, nil
}

// List returns a snapshot; later inserts do not show up in it.
func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Blog, 0, len(r.blogs))
	for i := range r.blogs {
		b := r.blogs[i]
		result = append(result, &b)
	}
	return result, nil
}
