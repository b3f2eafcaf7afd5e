package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", 2*time.Second), srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRegister_SendsBody(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "User registered successfully!"})
	})

	require.NoError(t, c.Register(context.Background(), "alice", "a@x.io", "pw"))
	assert.Equal(t, map[string]string{"username": "alice", "email": "a@x.io", "password": "pw"}, got)
}

func TestRegister_Duplicate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": msgUserExists})
	})

	err := c.Register(context.Background(), "alice", "a@x.io", "pw")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, msgUserExists, apiErr.Message)
}

func TestLogin_StoresTokenAndSendsIt(t *testing.T) {
	var authHeader string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case loginPath:
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "ok", "accessToken": "tok-1"})
		case blogsPath:
			authHeader = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, []any{})
		}
	})

	token, err := c.Login(context.Background(), "a@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = c.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", authHeader)

	c.Logout()
	_, err = c.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authHeader)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a@x.io", "bad")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Empty(t, c.token())
}

func TestCreateBlog(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in NewBlog
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Title == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgMissingFields})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Blog created successfully!",
			"blog": map[string]any{
				"_id": "b1", "title": in.Title, "description": in.Description,
				"author_name": in.AuthorName, "createdAt": "2024-01-02T03:04:05Z",
			},
		})
	})

	blog, err := c.CreateBlog(context.Background(), NewBlog{Title: "T", Description: "D", AuthorName: "A"})
	require.NoError(t, err)
	assert.Equal(t, "b1", blog.ID)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), blog.CreatedAt.UTC())

	_, err = c.CreateBlog(context.Background(), NewBlog{})
	assert.ErrorIs(t, err, common.ErrMissingRequiredField)
}

func TestListBlogs(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "1", "title": "a", "total_likes": 2.5},
			{"_id": "2", "title": "b"},
		})
	})

	blogs, err := c.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	require.NotNil(t, blogs[0].TotalLikes)
	assert.Equal(t, 2.5, *blogs[0].TotalLikes)
	assert.Nil(t, blogs[1].TotalLikes)
}

func TestServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Server error"})
	})

	_, err := c.ListBlogs(context.Background())
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestNonJSONErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	})

	err := c.Ping(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestPing_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_OK(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, healthPath, r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Server is running smoothly"})
	})

	assert.NoError(t, c.Ping(context.Background()))
}
