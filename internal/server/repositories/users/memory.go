package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// InMemoryRepository keeps users in a map keyed by email.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}
	r.users[user.Email] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &u, nil
}

// Count returns the number of stored users.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
