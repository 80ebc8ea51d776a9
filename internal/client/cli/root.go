package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
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
	Logout(ctx context.Context) error
	Post(ctx context.Context) error
	Feed(ctx context.Context) error
	Like(ctx context.Context) error
	Profile(ctx context.Context) error
	Whoami(ctx context.Context) error
}

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser.Username)
}

// Root starts the REPL on stdin and blocks until the user exits.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Anonsen (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL is a simple read–eval–print loop. It reads a line, parses the
// first token as the command, and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// print their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("anonsen %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post, feed, like, profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, feed, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "post":
			_ = a.Post(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "like":
			_ = a.Like(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
