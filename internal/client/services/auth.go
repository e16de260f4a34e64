// Package services contains application services for the job tracker client.
// This file defines the authentication service: session restore, login,
// register, logout, and profile housekeeping.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/applications"
	"github.com/dmitrijs2005/jobtrackr/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: hydrate the session from the persisted record at startup.
//   - Login/Register: authenticate against the server, drop any cached data
//     left by a previous account, and persist the session.
//   - Logout: clear the session and all locally cached data; never calls the server.
//   - Profile/UpdateProfile/ChangePassword: account operations for the signed-in user.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.UserProfile, error)
	Register(ctx context.Context, username, email, password string) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote Client,
// the session store, and the local applications cache.
type authService struct {
	client api.Client
	store  *session.Store
	apps   applications.Repository
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store, and applications cache.
func NewAuthService(client api.Client, store *session.Store, apps applications.Repository) AuthService {
	return &authService{client: client, store: store, apps: apps}
}

// Restore proxies the one-time session restore to the store.
func (a *authService) Restore(ctx context.Context) error {
	return a.store.Restore(ctx)
}

// Login authenticates against the server and persists the returned
// credential and user atomically before reporting success.
func (a *authService) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.adoptSession(ctx, resp)
}

// Register creates a new account and signs the user in with the credential
// the server returned.
func (a *authService) Register(ctx context.Context, username, email, password string) (*models.UserProfile, error) {
	resp, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.adoptSession(ctx, resp)
}

// adoptSession persists a successful auth response. A response without both
// credential and user is rejected so partial state is never stored.
func (a *authService) adoptSession(ctx context.Context, resp *models.AuthResponse) (*models.UserProfile, error) {
	if resp.Access == "" || resp.User == nil {
		return nil, fmt.Errorf("incomplete auth response from server")
	}
	// A fresh sign-in must not see application data cached for a previous
	// account (a 401 teardown leaves the cache table behind).
	if err := a.apps.Clear(ctx); err != nil {
		return nil, fmt.Errorf("cache clearing error: %w", err)
	}
	if err := a.store.Save(ctx, resp.Access, *resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return resp.User, nil
}

// Logout clears the session and wipes locally cached application data.
// It is purely local and safe to call when already logged out.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	if err := a.apps.Clear(ctx); err != nil {
		return fmt.Errorf("cache clearing error: %w", err)
	}
	return nil
}

// Profile fetches the signed-in user's profile and refreshes the persisted
// user record with it.
func (a *authService) Profile(ctx context.Context) (*models.UserProfile, error) {
	user, err := a.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	a.refreshStoredUser(ctx, user)
	return user, nil
}

// UpdateProfile applies profile changes on the server and mirrors the result
// into the persisted user record.
func (a *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	user, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	a.refreshStoredUser(ctx, user)
	return user, nil
}

// refreshStoredUser re-saves the session with an updated user snapshot.
// Best effort: a persistence failure does not fail the server operation.
func (a *authService) refreshStoredUser(ctx context.Context, user *models.UserProfile) {
	if token := a.store.Token(); token != "" && user != nil {
		_ = a.store.Save(ctx, token, *user)
	}
}

// ChangePassword updates the account password on the server. The current
// session stays valid; the server does not rotate the token.
func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return a.client.ChangePassword(ctx, oldPassword, newPassword)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
