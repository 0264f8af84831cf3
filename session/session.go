// Package session holds the process-wide patient session: who is signed
// in, and the register, login, logout and restore flows around the
// gateway's token.
package session

// go generate: mockery --name Gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/models"
)

// ErrPasswordMismatch is returned by Register before any request is sent
var ErrPasswordMismatch = errors.New("Passwords do not match")

// Gateway is the part of the API client the session drives
type Gateway interface {
	LoadToken(ctx context.Context) error
	HasToken() bool
	ClearToken(ctx context.Context) error
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	GetUserProfile(ctx context.Context) (models.User, error)
}

// Session is safe for concurrent use
type Session struct {
	gw Gateway

	mu   sync.RWMutex
	user *models.User
}

// New returns an unauthenticated session
func New(gw Gateway) *Session {
	return &Session{gw: gw}
}

// CurrentUser returns the signed in user
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a user is signed in
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetUser replaces the held user, for example after a profile update
func (s *Session) SetUser(u models.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Restore picks up a token persisted by an earlier run. A rejected token is
// cleared. Any other failure keeps the token and leaves the session signed
// out until the next attempt.
func (s *Session) Restore(ctx context.Context) error {
	if err := s.gw.LoadToken(ctx); err != nil {
		return err
	}
	if !s.gw.HasToken() {
		return nil
	}

	user, err := s.gw.GetUserProfile(ctx)
	if err != nil {
		s.clear()
		if apiErr, ok := gateway.AsAPIError(err); ok && apiErr.Unauthorized() {
			zap.S().Infow("stored session token rejected, clearing it", "status", apiErr.StatusCode)
			if clearErr := s.gw.ClearToken(ctx); clearErr != nil {
				zap.S().Errorw("failed to clear stored token", "error", clearErr)
			}
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}
	s.SetUser(user)
	return nil
}

// Register validates reg locally, creates the account and signs it in
func (s *Session) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := ValidateRegistration(reg); err != nil {
		return models.User{}, err
	}
	resp, err := s.gw.Register(ctx, reg)
	if err != nil {
		s.clear()
		return models.User{}, err
	}
	return s.establish(ctx, resp)
}

// Login signs in with creds. On failure the session stays signed out and
// the API's message is returned unchanged.
func (s *Session) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := s.gw.Login(ctx, creds)
	if err != nil {
		s.clear()
		return models.User{}, err
	}
	return s.establish(ctx, resp)
}

// establish takes the user from an auth response, falling back to the
// profile endpoint
func (s *Session) establish(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	if resp.User != nil {
		s.SetUser(*resp.User)
		return *resp.User, nil
	}
	user, err := s.gw.GetUserProfile(ctx)
	if err != nil {
		s.clear()
		if clearErr := s.gw.ClearToken(ctx); clearErr != nil {
			zap.S().Errorw("failed to clear stored token", "error", clearErr)
		}
		return models.User{}, err
	}
	s.SetUser(user)
	return user, nil
}

// Refresh re-reads the profile of the signed in user
func (s *Session) Refresh(ctx context.Context) (models.User, error) {
	user, err := s.gw.GetUserProfile(ctx)
	if err != nil {
		return models.User{}, err
	}
	s.SetUser(user)
	return user, nil
}

// Expire forgets a session the API no longer accepts, token included
func (s *Session) Expire(ctx context.Context) {
	s.clear()
	if err := s.gw.ClearToken(ctx); err != nil {
		zap.S().Errorw("failed to clear stored token", "error", err)
	}
}

// Logout signs out locally in every case. The API's error, if any, is
// returned for display only.
func (s *Session) Logout(ctx context.Context) error {
	err := s.gw.Logout(ctx)
	s.clear()
	if err != nil {
		zap.S().Warnw("remote logout failed, local session cleared", "error", err)
	}
	return err
}
