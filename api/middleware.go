package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// OperatorAuth puts HTTP basic auth in front of the dashboard. The single
// operator account comes from configuration; the password is a bcrypt hash.
type OperatorAuth struct {
	Username     string
	PasswordHash string

	authenticator auth.Authenticator
}

// SetupGoGuardian enables the basic strategy. Until it is called, or when no
// account is configured, Middleware lets every request through.
func (o *OperatorAuth) SetupGoGuardian() {
	if o.Username == "" || o.PasswordHash == "" {
		return
	}
	o.authenticator = auth.New()
	cache := store.NewFIFO(context.Background(), 10*time.Minute)
	o.authenticator.EnableStrategy(basic.StrategyKey, basic.New(o.ValidateUser, cache))
}

// Middleware rejects requests without valid operator credentials
func (o *OperatorAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if o.authenticator == nil {
			next.ServeHTTP(w, r)
			return
		}
		user, err := o.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Warnw("unauthorized", "url", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
			w.Header().Set("WWW-Authenticate", `Basic realm="emergency-dashboard"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		zap.S().Debugf("operator %s authenticated", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// ValidateUser checks a username and password against the configured operator
func (o *OperatorAuth) ValidateUser(ctx context.Context, r *http.Request, username, password string) (auth.Info, error) {
	usernameHash := sha256.Sum256([]byte(username))
	expectedUsernameHash := sha256.Sum256([]byte(o.Username))
	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1

	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}
	if !usernameMatch {
		return nil, fmt.Errorf("invalid credentials")
	}
	return auth.NewDefaultUser(username, "operator", nil, nil), nil
}
