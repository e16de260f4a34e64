package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts for a username, email, and password and creates a new
// account. On success the user is signed in immediately.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is printed and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	pw := string(password)
	common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, userName, email, pw)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Welcome,", user.Username+"!")
	return nil
}

// Login prompts for credentials and authenticates against the server.
// On success the session is persisted, so the next start skips the login.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	pw := string(password)
	common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, userName, pw)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Welcome back,", user.Username+"!")
	return nil
}

// Logout clears the session and the locally cached data. Purely local.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Profile fetches and displays the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Username:  %s", user.Username))
	printlnFn(fmt.Sprintf("Email:     %s", user.Email))
	printlnFn(fmt.Sprintf("Full name: %s", user.FullName))
	printlnFn(fmt.Sprintf("Skills:    %s", user.Skills))
	return nil
}

// EditProfile prompts for the editable profile fields and saves them.
func (a *App) EditProfile(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	skills, err := getSimpleText(a.reader, "Enter skills (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.UpdateProfile(ctx, models.UpdateProfileRequest{
		FullName: fullName,
		Skills:   skills,
	}); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Profile updated")
	return nil
}

// ChangePassword prompts for the old and new password and rotates the
// account password. The session stays valid.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPw, err := getPassword(os.Stdout, "Enter current password")
	if err != nil {
		return err
	}
	old := string(oldPw)
	common.WipeByteArray(oldPw)

	newPw, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	next := string(newPw)
	common.WipeByteArray(newPw)

	if err := a.auth.ChangePassword(ctx, old, next); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Password changed")
	return nil
}
