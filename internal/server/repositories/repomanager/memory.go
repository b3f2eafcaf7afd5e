package repomanager

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps all data in process memory. The same
// repository instances are returned on every call.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
	blogs *blogs.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		blogs: blogs.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *InMemoryRepositoryManager) Blogs() blogs.Repository { return m.blogs }

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return ctx.Err() }

func (m *InMemoryRepositoryManager) Close() error { return nil }
