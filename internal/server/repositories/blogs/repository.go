// Package blogs persists blog posts. Posts are append-only: there is no
// update or delete.
package blogs

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
}
