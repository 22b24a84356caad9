package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/credentials"
	"github.com/dmitrijs2005/usermanager/internal/models"
)

var errLoginFailed = errors.New("login failed")

// readSecret prompts for a password and returns it as a string, wiping the
// byte buffer it was read into.
func (a *App) readSecret(prompt string) (string, error) {
	b, err := GetPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, "Error:", userMessage(err))
	return err
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := a.readSecret("Password")
	if err != nil {
		return a.fail(err)
	}
	return a.login(ctx, email, password)
}

func (a *App) login(ctx context.Context, email, password string) error {
	res := a.authService.Login(ctx, email, password)
	if !res.Authenticated() {
		return a.fail(errLoginFailed)
	}

	a.userID = res.UserID
	a.email = email
	if res.Migrated {
		fmt.Fprintln(a.out, "Stored password upgraded to bcrypt.")
	}
	fmt.Fprintln(a.out, "Welcome,", email)
	return nil
}

// ChangePassword asks for the current, new and confirmation passwords. When
// nobody is logged in it logs in with the current password first.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		email, err := GetSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return a.fail(err)
		}
		current, err := a.readSecret("Current password")
		if err != nil {
			return a.fail(err)
		}
		if err := a.login(ctx, email, current); err != nil {
			return err
		}
		return a.changePassword(ctx, current)
	}

	current, err := a.readSecret("Current password")
	if err != nil {
		return a.fail(err)
	}
	return a.changePassword(ctx, current)
}

func (a *App) changePassword(ctx context.Context, current string) error {
	newPassword, err := a.readSecret("New password")
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, credentials.Evaluate(newPassword).Message)

	confirm, err := a.readSecret("Confirm new password")
	if err != nil {
		return a.fail(err)
	}

	if err := a.authService.ChangePassword(ctx, a.userID, current, newPassword, confirm); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(err)
	}
	role, err := GetSimpleText(a.reader, "Role (user|admin, empty for user)", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := a.readSecret("Password")
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, credentials.Evaluate(password).Message)

	confirm, err := a.readSecret("Confirm password")
	if err != nil {
		return a.fail(err)
	}
	if password != confirm {
		return a.fail(common.ErrPasswordMismatch)
	}

	u, err := a.userService.Create(ctx, &models.User{Name: name, Email: email, Role: models.Role(role)}, password)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "User %s created with id %d.\n", u.Email, u.ID)
	return nil
}

func (a *App) Strength(ctx context.Context) error {
	password, err := a.readSecret("Password to check")
	if err != nil {
		return a.fail(err)
	}
	ev := credentials.Evaluate(password)
	fmt.Fprintf(a.out, "%s (score %d)\n", ev.Message, ev.Score)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.userID = 0
	a.email = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, errLoginFailed), errors.Is(err, common.ErrorUnauthorized):
		return "invalid email or password"
	case errors.Is(err, common.ErrPersistence):
		return "could not save changes, try again later"
	case errors.Is(err, common.ErrAlreadyExists):
		return "a user with this email already exists"
	case errors.Is(err, common.ErrWeakPassword):
		return credentials.StrengthRejected.Message()
	default:
		return err.Error()
	}
}
