package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/gophforum/internal/client/client"
	"github.com/dmitrijs2005/gophforum/internal/client/config"
	"github.com/dmitrijs2005/gophforum/internal/client/datasource"
	"github.com/dmitrijs2005/gophforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophforum/internal/client/services"
	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	backend *client.GRPCClient
	logger  logging.Logger

	source  datasource.Source
	session *session.Session
	auth    *services.AuthFlow
	feed    *services.Feed
	media   *services.Media
	profile *services.Profile

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local storage and picks the data source: the gRPC backend
// when an address is configured, the local fallback otherwise.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	repo := metadata.NewSQLiteRepository(db)

	var backend datasource.Backend
	var grpcClient *client.GRPCClient
	if c.RemoteEnabled() {
		grpcClient, err = client.NewGRPCClient(ctx, c.ServerEndpointAddr, repo, l)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		backend = grpcClient
	}

	src := datasource.New(c.RemoteEnabled(), backend)
	sess := session.New(session.NewSQLiteStore(repo, l), l)

	a := newApp(src, sess, l, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.db = db
	a.backend = grpcClient
	return a, nil
}

func newApp(src datasource.Source, sess *session.Session, l logging.Logger, r *bufio.Reader, w io.Writer) *App {
	return &App{
		logger:  l.With("module", "cli"),
		source:  src,
		session: sess,
		auth:    services.NewAuthFlow(src, sess, l),
		feed:    services.NewFeed(src, sess, l),
		media:   services.NewMedia(src, sess, l),
		profile: services.NewProfile(sess),
		reader:  r,
		out:     w,
	}
}

// Run restores the previous session and serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if u := a.auth.Restore(ctx); u != nil {
		a.printf("Welcome back, %s!\n", u.DisplayName)
	}
	a.println("GophForum CLI (type 'help' for commands)")

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the feed, the backend connection and the database.
func (a *App) Close() {
	a.feed.Close()
	if a.backend != nil {
		_ = a.backend.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.SignedIn()
}

func (a *App) modeName() string {
	if a.source.Remote() {
		return "remote"
	}
	return "local"
}

// status is shown in the prompt: who is signed in and where data lives.
func (a *App) status() string {
	name := "guest"
	if u := a.session.User(); u != nil {
		name = u.DisplayName
	}
	return name + " " + a.modeName()
}
