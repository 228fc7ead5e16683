package cli

import (
	"context"

	"github.com/dmitrijs2005/studify/internal/accounts"
)

// Signup prompts for the account fields, creates the account and signs the
// new user in.
func (a *App) Signup(ctx context.Context, _ []string) error {
	var req accounts.SignupRequest
	var err error

	if req.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Password, err = GetPassword(a.reader, a.out); err != nil {
		return err
	}

	u, err := a.svc.Accounts.Signup(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Welcome, %s!\n", u.FirstName)
	return nil
}

// Login takes the email as an argument or prompts for it.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	var err error
	if len(args) > 0 {
		email = args[0]
	} else if email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	u, err := a.svc.Accounts.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.printf("Welcome back, %s!\n", u.FirstName)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.svc.Accounts.Logout(ctx)
	a.println("Logged out")
	return nil
}
