// Package users persists user accounts. Implementations exist for
// PostgreSQL, MongoDB and process memory; all of them enforce email
// uniqueness themselves and report violations as common.ErrDuplicateEmail.
package users

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
