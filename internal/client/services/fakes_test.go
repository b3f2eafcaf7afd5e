package services

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/client/client"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	RegisterArgs []string
	RegisterErr  error

	LoginToken string
	LoginErr   error

	LogoutCalls int

	CreateIn  *client.NewBlog
	CreateOut *client.Blog
	CreateErr error

	ListOut []client.Blog
	ListErr error

	PingErr error
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) error {
	f.RegisterArgs = []string{username, email, password}
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Logout() { f.LogoutCalls++ }

func (f *fakeClient) CreateBlog(_ context.Context, blog client.NewBlog) (*client.Blog, error) {
	f.CreateIn = &blog
	return f.CreateOut, f.CreateErr
}

func (f *fakeClient) ListBlogs(context.Context) ([]client.Blog, error) {
	return f.ListOut, f.ListErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }
