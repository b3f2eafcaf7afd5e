// Package services contains application services for the blog API client.
// This file defines the authentication service: register, login, logout and
// the liveness probe.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/client/client"
	"github.com/golang-jwt/jwt/v5"
)

// Session describes the logged-in user as asserted by the access token.
type Session struct {
	Email     string
	Role      string
	ExpiresAt time.Time
}

// tokenClaims mirrors the payload the server puts in access tokens.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthService defines authentication operations for the CLI.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) (*Session, error)
	Logout()
	Session() *Session
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client

	mu      sync.RWMutex
	session *Session
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) error {
	return a.client.Register(ctx, strings.TrimSpace(username), strings.TrimSpace(email), string(password))
}

// Login authenticates against the server and reads the token's claims. The
// client has no signing key, so the claims are decoded without verification
// and used for display only.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	token, err := a.client.Login(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		a.client.Logout()
		return nil, fmt.Errorf("unreadable access token: %w", err)
	}

	s := &Session{Email: claims.Email, Role: claims.Role}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	return s, nil
}

func (a *authService) Logout() {
	a.client.Logout()

	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
}

// Session returns the current session or nil.
func (a *authService) Session() *Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
