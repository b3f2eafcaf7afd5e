// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/cryptox"
	"github.com/dmitrijs2005/blogapi/internal/server/auth"
	"github.com/dmitrijs2005/blogapi/internal/server/config"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// now and newID are seams for tests.
var (
	now   = time.Now
	newID = uuid.NewString
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint an access token
type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a user with role "user". An email that is already taken
// yields common.ErrDuplicateEmail, whether it is caught by the lookup or by
// the store's unique index.
func (s *UserService) Register(ctx context.Context, username, email, password string) error {
	repo := s.repomanager.Users()

	_, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:        newID(),
		UserName:  username,
		Email:     email,
		Password:  hash,
		Role:      models.RoleUser,
		CreatedAt: now().UTC(),
	}
	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

// Login verifies the password for email and returns a signed access token.
// Unknown email and wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users()

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnCompare(password)
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	if err := cryptox.ComparePassword(user.Password, password); err != nil {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}
