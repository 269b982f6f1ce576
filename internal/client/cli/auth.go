package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Haseebfayyaz/authgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally, and signs in via
// the remote operation. The store is updated around the call the same way
// for every auth flow: clear any stale error, mark loading, then either
// install the returned user or record the failure message. A failed attempt
// leaves the previous session untouched apart from error and loading.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		fmt.Println(err)
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validatePassword(password); err != nil {
		fmt.Println(err)
		return err
	}

	a.store.SetError("")
	a.store.SetLoading(true)

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		a.store.SetError(err.Error())
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		fmt.Println(err)
		return err
	}

	a.store.SetUser(user)
	a.log.Info(ctx, "signed in", "user", user.Key())
	fmt.Printf("Signed in as %s\n", user.Email)
	return nil
}

// Register prompts for the registration fields, validates them locally, and
// creates the account. On success the user is signed in immediately (the
// server issues a token with the registration response).
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		fmt.Println(err)
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		fmt.Println(err)
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validatePassword(password); err != nil {
		fmt.Println(err)
		return err
	}

	confirmation, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := validateConfirmation(password, confirmation); err != nil {
		fmt.Println(err)
		return err
	}

	a.store.SetError("")
	a.store.SetLoading(true)

	user, err := a.client.Register(ctx, name, email, string(password), string(confirmation))
	if err != nil {
		a.store.SetError(err.Error())
		a.log.Warn(ctx, "registration failed", "email", email, "error", err)
		fmt.Println(err)
		return err
	}

	a.store.SetUser(user)
	a.log.Info(ctx, "registered", "user", user.Key())
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Logout clears the session: the store action also removes the persisted
// token.
func (a *App) Logout(ctx context.Context) error {
	a.store.ClearUser()
	a.log.Info(ctx, "signed out")
	fmt.Println("Signed out.")
	return nil
}
