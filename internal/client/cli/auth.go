package cli

import (
	"context"
	"fmt"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name, an email and a password and creates the
// account. The password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.authService.Register(ctx, userName, email, password); err != nil {
		return err
	}

	printlnFn("User registered, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// email becomes part of the prompt.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	s, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (role %s), token valid until %s",
		s.Email, s.Role, s.ExpiresAt.Local().Format(time.RFC1123)))
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	printlnFn("Logged out")
	return nil
}

// Ping reports whether the server answers.
func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		return err
	}
	printlnFn("Server is up")
	return nil
}
