package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogapi/internal/common"
)

type fakeExec struct {
	loggedIn bool
	loginErr error

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Post(ctx context.Context) error { f.calls = append(f.calls, "post"); return nil }
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Ping(ctx context.Context) error { f.calls = append(f.calls, "ping"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

// capturePrintln records everything printed through printlnFn.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"register",
		"login",
		"",
		"post",
		"l",
		"list",
		"ping",
		"logout",
		"exit",
		"post",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	want := []string{"register", "login", "post", "list", "list", "ping", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("foobar"))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	found := false
	for _, l := range *lines {
		if l == "Unknown command: foobar" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing unknown-command message in %v", *lines)
	}
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loginErr: fmt.Errorf("wrapped: %w", common.ErrInvalidCredentials)}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\nquit\n"))

	found := false
	for _, l := range *lines {
		if l == "Error: invalid email or password" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing error message in %v", *lines)
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrDuplicateEmail, "a user with this email already exists"},
		{common.ErrMissingRequiredField, "title, description and author are required"},
		{errors.New("other"), "other"},
	}
	for _, tt := range tests {
		if got := describeError(tt.err); got != tt.want {
			t.Errorf("describeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
