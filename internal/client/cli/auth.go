package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/anonsen/anonsen/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out, "Choose a password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.auth.Register(ctx, username, email, string(password), string(confirm))
	if err != nil {
		fmt.Println(friendlyError(err))
		return err
	}

	a.currentUser = user
	fmt.Printf("Account created. Welcome to Anonsen, %s!\n", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Email or username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out, "Password")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	rememberMe, err := GetConfirm(a.reader, "Remember me?", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.auth.Login(ctx, identifier, string(password), rememberMe)
	if err != nil {
		fmt.Println(friendlyError(err))
		return err
	}

	a.currentUser = user
	fmt.Printf("Welcome back, %s!\n", user.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.currentUser = nil
	fmt.Println("Logged out")
	return nil
}

func (a *App) Whoami(_ context.Context) error {
	if a.currentUser == nil {
		fmt.Println("Not logged in")
		return nil
	}
	u := a.currentUser
	fmt.Printf("%s <%s> (id %d, joined %s)\n", u.Username, u.Email, u.ID, u.JoinDate.Format("2006-01-02"))
	if u.Bio != "" {
		fmt.Println(u.Bio)
	}
	return nil
}

// friendlyError maps expected control-flow errors to one-line notices;
// anything else (storage write failures included) is shown as-is.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		return "A user with this email address already exists"
	case errors.Is(err, common.ErrUsernameTaken):
		return "This username is already taken"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email/username or password"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
