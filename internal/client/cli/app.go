package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/blogapi/internal/client/client"
	"github.com/dmitrijs2005/blogapi/internal/client/config"
	"github.com/dmitrijs2005/blogapi/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	blogService services.BlogService
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	as := services.NewAuthService(apiClient)
	bs := services.NewBlogService(apiClient)

	return &App{
		config:      c,
		authService: as,
		blogService: bs,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run starts the REPL on standard input and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Blog API CLI (type 'help' for commands), server:", a.config.ServerEndpointAddr)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.Session() != nil
}

func (a *App) getStatus() string {
	if s := a.authService.Session(); s != nil {
		return "(" + s.Email + ")"
	}
	return ""
}
