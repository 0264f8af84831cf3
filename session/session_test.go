package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/emergency-dashboard/databases"
	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/session"
	"github.com/linesmerrill/emergency-dashboard/session/mocks"
)

func validRegistration() models.Registration {
	return models.Registration{
		Username:        "asha",
		Email:           "asha@example.com",
		Password:        "s3cret-pw",
		PasswordConfirm: "s3cret-pw",
		FirstName:       "Asha",
		LastName:        "Rao",
	}
}

func TestRegisterPasswordMismatchSendsNothing(t *testing.T) {
	gw := mocks.NewGateway(t)
	s := session.New(gw)

	reg := validRegistration()
	reg.PasswordConfirm = "different"
	_, err := s.Register(context.Background(), reg)

	assert.ErrorIs(t, err, session.ErrPasswordMismatch)
	assert.EqualError(t, err, "Passwords do not match")
	assert.False(t, s.Authenticated())
	gw.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterRequiredFields(t *testing.T) {
	gw := mocks.NewGateway(t)
	s := session.New(gw)

	reg := validRegistration()
	reg.FirstName = ""
	reg.Email = "not-an-email"
	_, err := s.Register(context.Background(), reg)

	assert.EqualError(t, err, "email must be a valid email address, first_name is required")
	gw.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterUsesResponseUser(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.On("Register", mock.Anything, validRegistration()).Return(models.AuthResponse{
		Token: "tok",
		User:  &models.User{ID: "u1", Username: "asha"},
	}, nil)
	s := session.New(gw)

	user, err := s.Register(context.Background(), validRegistration())
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, s.Authenticated())
	gw.AssertNotCalled(t, "GetUserProfile", mock.Anything)
}

func TestLoginFallsBackToProfile(t *testing.T) {
	gw := mocks.NewGateway(t)
	creds := models.Credentials{Username: "asha", Password: "pw"}
	gw.On("Login", mock.Anything, creds).Return(models.AuthResponse{Token: "tok"}, nil)
	gw.On("GetUserProfile", mock.Anything).Return(models.User{ID: "u1", FirstName: "Asha"}, nil)
	s := session.New(gw)

	user, err := s.Login(context.Background(), creds)
	assert.NoError(t, err)
	assert.Equal(t, "Asha", user.DisplayName())

	current, ok := s.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "u1", current.ID)
}

func TestLoginFailureStaysSignedOut(t *testing.T) {
	gw := mocks.NewGateway(t)
	creds := models.Credentials{Username: "asha", Password: "wrong"}
	gw.On("Login", mock.Anything, creds).Return(models.AuthResponse{}, &gateway.APIError{StatusCode: 400, Message: "Invalid credentials"})
	s := session.New(gw)

	_, err := s.Login(context.Background(), creds)
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, s.Authenticated())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestLoginProfileFailureClearsToken(t *testing.T) {
	gw := mocks.NewGateway(t)
	creds := models.Credentials{Username: "asha", Password: "pw"}
	gw.On("Login", mock.Anything, creds).Return(models.AuthResponse{Token: "tok"}, nil)
	gw.On("GetUserProfile", mock.Anything).Return(models.User{}, &gateway.APIError{Message: "connection refused"})
	gw.On("ClearToken", mock.Anything).Return(nil)
	s := session.New(gw)

	_, err := s.Login(context.Background(), creds)
	assert.Error(t, err)
	assert.False(t, s.Authenticated())
}

func TestLogoutClearsEvenWhenRemoteFails(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.On("Logout", mock.Anything).Return(&gateway.APIError{Message: "connection refused"})
	s := session.New(gw)
	s.SetUser(models.User{ID: "u1"})

	err := s.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, s.Authenticated())
}

func TestRestore(t *testing.T) {
	t.Run("no stored token", func(t *testing.T) {
		gw := mocks.NewGateway(t)
		gw.On("LoadToken", mock.Anything).Return(nil)
		gw.On("HasToken").Return(false)
		s := session.New(gw)

		assert.NoError(t, s.Restore(context.Background()))
		assert.False(t, s.Authenticated())
		gw.AssertNotCalled(t, "GetUserProfile", mock.Anything)
	})

	t.Run("valid token", func(t *testing.T) {
		gw := mocks.NewGateway(t)
		gw.On("LoadToken", mock.Anything).Return(nil)
		gw.On("HasToken").Return(true)
		gw.On("GetUserProfile", mock.Anything).Return(models.User{ID: "u1"}, nil)
		s := session.New(gw)

		assert.NoError(t, s.Restore(context.Background()))
		assert.True(t, s.Authenticated())
	})

	t.Run("rejected token is cleared", func(t *testing.T) {
		gw := mocks.NewGateway(t)
		gw.On("LoadToken", mock.Anything).Return(nil)
		gw.On("HasToken").Return(true)
		gw.On("GetUserProfile", mock.Anything).Return(models.User{}, &gateway.APIError{StatusCode: 401, Message: "Invalid token."})
		gw.On("ClearToken", mock.Anything).Return(nil)
		s := session.New(gw)

		assert.NoError(t, s.Restore(context.Background()))
		assert.False(t, s.Authenticated())
	})

	t.Run("unreachable API keeps token", func(t *testing.T) {
		gw := mocks.NewGateway(t)
		gw.On("LoadToken", mock.Anything).Return(nil)
		gw.On("HasToken").Return(true)
		gw.On("GetUserProfile", mock.Anything).Return(models.User{}, &gateway.APIError{Message: "connection refused"})
		s := session.New(gw)

		assert.Error(t, s.Restore(context.Background()))
		assert.False(t, s.Authenticated())
		gw.AssertNotCalled(t, "ClearToken", mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		gw := mocks.NewGateway(t)
		gw.On("LoadToken", mock.Anything).Return(errors.New("permission denied"))
		s := session.New(gw)

		assert.Error(t, s.Restore(context.Background()))
	})
}

func TestLoginAfterRestoreOutageReplacesRevokedToken(t *testing.T) {
	var up atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !up.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Invalid token."}`))
			return
		}
		switch r.URL.Path {
		case "/auth/login/":
			w.Write([]byte(`{"token": "fresh", "user": {"id": "u1", "username": "asha"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := databases.NewMemoryTokenStore("revoked")
	s := session.New(gateway.NewClient(srv.URL, store))

	err := s.Restore(context.Background())
	assert.Error(t, err)
	assert.False(t, s.Authenticated())
	held, _ := store.Load(context.Background())
	assert.Equal(t, "revoked", held)

	up.Store(true)
	user, err := s.Login(context.Background(), models.Credentials{Username: "asha", Password: "s3cret-pw"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, s.Authenticated())

	held, _ = store.Load(context.Background())
	assert.Equal(t, "fresh", held)
}

func TestRefreshReplacesUser(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.On("GetUserProfile", mock.Anything).Return(models.User{ID: "u1", LastName: "Rao"}, nil)
	s := session.New(gw)
	s.SetUser(models.User{ID: "u1", FirstName: "Old"})

	user, err := s.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Rao", user.DisplayName())
}

func TestExpireClearsToken(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.On("ClearToken", mock.Anything).Return(errors.New("read-only file system"))
	s := session.New(gw)
	s.SetUser(models.User{ID: "u1"})

	s.Expire(context.Background())
	assert.False(t, s.Authenticated())
}
