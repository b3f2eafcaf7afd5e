package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/server/config"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeBlogsRepo struct {
	createErr error
	created   []*models.Blog

	listOut []*models.Blog
	listErr error
}

func (f *fakeBlogsRepo) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBlogsRepo) List(ctx context.Context) ([]*models.Blog, error) {
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBlogsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context) error { return nil }
func (m *fakeRepoManager) Users() users.Repository             { return m.u }
func (m *fakeRepoManager) Blogs() blogs.Repository             { return m.b }
func (m *fakeRepoManager) Close() error                        { return nil }

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
}
