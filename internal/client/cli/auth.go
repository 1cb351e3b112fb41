package cli

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/client/services"
)

func (a *App) Login(ctx context.Context, _ []string) error {
	a.auth.SetMode(services.ModeSignIn)
	return a.authenticate(ctx)
}

func (a *App) Signup(ctx context.Context, _ []string) error {
	a.auth.SetMode(services.ModeSignUp)
	return a.authenticate(ctx)
}

// authenticate collects the form for the current mode and submits it.
func (a *App) authenticate(ctx context.Context) error {
	a.auth.Open()

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := required("Email", email); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	if err := required("Password", password); err != nil {
		return err
	}

	form := services.Form{Email: email, Password: password}
	if a.auth.Mode() == services.ModeSignUp {
		form.DisplayName, err = getSimpleText(a.reader, "Display name", a.out)
		if err != nil {
			return err
		}
		if err := required("Display name", form.DisplayName); err != nil {
			return err
		}
	}

	u, err := a.auth.Submit(ctx, form)
	if err != nil {
		return err
	}
	a.printf("Welcome, %s!\n", u.DisplayName)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		a.println("Not signed in.")
		return nil
	}
	err := a.auth.SignOut(ctx)
	a.println("Signed out.")
	return err
}
