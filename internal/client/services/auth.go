package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/client/datasource"
	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// Mode selects what Submit does.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

func (m Mode) String() string {
	if m == ModeSignUp {
		return "sign-up"
	}
	return "sign-in"
}

// Form is what the user typed. DisplayName is only used when signing up.
type Form struct {
	Email       string
	Password    string
	DisplayName string
}

// AuthFlow drives sign-in and sign-up. A failed submit keeps the flow open
// with the entered fields and the error text.
type AuthFlow struct {
	mu      sync.Mutex
	source  datasource.Source
	session *session.Session
	logger  logging.Logger

	open bool
	mode Mode
	form Form
	err  string
}

func NewAuthFlow(src datasource.Source, s *session.Session, l logging.Logger) *AuthFlow {
	return &AuthFlow{source: src, session: s, logger: l.With("module", "auth")}
}

func (a *AuthFlow) Open() {
	a.mu.Lock()
	a.open = true
	a.mu.Unlock()
}

func (a *AuthFlow) Close() {
	a.mu.Lock()
	a.open = false
	a.mu.Unlock()
}

func (a *AuthFlow) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

func (a *AuthFlow) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// SetMode switches to m.
func (a *AuthFlow) SetMode(m Mode) {
	a.mu.Lock()
	a.mode = m
	a.mu.Unlock()
}

// Toggle flips between sign-in and sign-up.
func (a *AuthFlow) Toggle() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == ModeSignIn {
		a.mode = ModeSignUp
	} else {
		a.mode = ModeSignIn
	}
	return a.mode
}

// Form returns the last submitted fields.
func (a *AuthFlow) Form() Form {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.form
}

// Err returns the error text of the last failed submit, or "".
func (a *AuthFlow) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Submit authenticates with f in the current mode. On success the user is
// stored in the session and the flow closes. On failure the session is left
// untouched.
func (a *AuthFlow) Submit(ctx context.Context, f Form) (*models.User, error) {
	a.mu.Lock()
	a.open = true
	a.form = f
	a.err = ""
	isSignup := a.mode == ModeSignUp
	a.mu.Unlock()

	u, err := a.source.Authenticate(ctx, f.Email, f.Password, isSignup, f.DisplayName)
	if err != nil {
		a.mu.Lock()
		a.err = err.Error()
		a.mu.Unlock()
		a.logger.Warn(ctx, "authentication failed", "mode", modeName(isSignup), "error", err)
		return nil, err
	}

	a.session.Set(ctx, u)

	a.mu.Lock()
	a.open = false
	a.mu.Unlock()

	a.logger.Info(ctx, "signed in", "user", u.ID, "remote", a.source.Remote())
	return u, nil
}

func modeName(isSignup bool) string {
	if isSignup {
		return ModeSignUp.String()
	}
	return ModeSignIn.String()
}

// SignOut ends the backend session and clears the local one. The local
// session is cleared even when the backend call fails.
func (a *AuthFlow) SignOut(ctx context.Context) error {
	err := a.source.SignOut(ctx)
	a.session.Clear(ctx)
	if err != nil {
		a.logger.Warn(ctx, "backend sign-out failed", "error", err)
	}
	return err
}

// Restore seeds the session from local storage. In remote mode with nothing
// stored locally it asks the backend whether persisted credentials are
// still valid.
func (a *AuthFlow) Restore(ctx context.Context) *models.User {
	u := a.session.Restore(ctx)
	if u != nil || !a.source.Remote() {
		return u
	}

	remote, err := a.source.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "backend session check failed", "error", err)
		return nil
	}
	if remote != nil {
		a.session.Set(ctx, remote)
	}
	return remote
}
