package repomanager

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

// RepositoryManager vends the repositories of one storage backend and owns
// its connection.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Blogs() blogs.Repository
	Close() error
}
