package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hvtran/shopfront/internal/client/api"
	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account via the
// AuthService. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, models.RegisterRequest{
		Username: username,
		Password: string(password),
		Email:    email,
		FullName: fullName,
		Phone:    phone,
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Login prompts for credentials, authenticates, and publishes the new
// identity to the session manager (which swaps the cart slot).
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Cannot reach the server, try again later.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.user = user
	a.session.Set(ctx, session.User(user.ID))
	printlnFn(fmt.Sprintf("Logged in as %s.", user.Username))
	return nil
}

// Logout ends the session server-side (best effort), clears the local one,
// and publishes the guest identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	a.user = nil
	a.session.Set(ctx, session.Guest())
	printlnFn("Logged out.")
	return nil
}
