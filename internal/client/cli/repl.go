package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Categories(ctx context.Context, args []string) error
	Category(ctx context.Context, args []string) error
	Downloads(ctx context.Context, args []string) error
	Feed(ctx context.Context, args []string) error
	More(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Signup(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Bio(ctx context.Context, args []string) error
	Subscribe(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpGuest    = "Available commands: categories, category <key>, downloads, feed, more, login, signup, exit"
	helpSignedIn = "Available commands: categories, category <key>, downloads, feed, more, post, profile, bio, subscribe, avatar <path>, upload <path>..., logout, exit"
)

// runREPL reads one command per line and dispatches it. A failing command
// prints its error message and the loop continues. The loop ends on EOF or
// exit/quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("forum (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpGuest)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "categories":
			handler = a.Categories
		case "category":
			handler = a.Category
		case "downloads":
			handler = a.Downloads
		case "feed":
			handler = a.Feed
		case "more":
			handler = a.More
		case "post":
			handler = a.Post
		case "login":
			handler = a.Login
		case "signup":
			handler = a.Signup
		case "logout":
			handler = a.Logout
		case "profile":
			handler = a.Profile
		case "bio":
			handler = a.Bio
		case "subscribe":
			handler = a.Subscribe
		case "avatar":
			handler = a.Avatar
		case "upload":
			handler = a.Upload
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
