package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Post(ctx context.Context) error
	List(ctx context.Context) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF or
// "exit"/"quit".
//
//	register       create an account
//	login          authenticate
//	post           create a blog post
//	(l)ist         list blog posts
//	ping           check that the server is up
//	logout         forget the access token
//	exit | quit    leave the program
//
// Handler errors are printed and the loop continues. Commands and their
// prompts share reader, so a handler consumes exactly the lines it asks for.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("blog %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post, (l)ist, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, post, (l)ist, ping, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "post":
			err = a.Post(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "ping":
			err = a.Ping(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}
