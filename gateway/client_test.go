package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/emergency-dashboard/databases"
	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/models"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestRequestSendsJSONAndTokenHeader(t *testing.T) {
	var gotAuth, gotType string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"my_emergencies": 3}`))
	})

	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore("abc123"))
	assert.NoError(t, c.LoadToken(context.Background()))

	stats, err := c.GetDashboardStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.MyEmergencies)
	assert.Equal(t, "Token abc123", gotAuth)
	assert.Equal(t, "application/json", gotType)
}

func TestRequestWithoutTokenOmitsHeader(t *testing.T) {
	var present bool
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	})

	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))
	_, err := c.GetHospitals(context.Background())
	assert.NoError(t, err)
	assert.False(t, present)
	assert.False(t, c.HasToken())
}

func TestRequestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message", http.StatusBadRequest, `{"message": "Bad priority", "detail": "ignored"}`, "Bad priority"},
		{"detail", http.StatusUnauthorized, `{"detail": "Invalid credentials"}`, "Invalid credentials"},
		{"error", http.StatusBadRequest, `{"error": "Only patients can create emergencies"}`, "Only patients can create emergencies"},
		{"non field errors", http.StatusBadRequest, `{"non_field_errors": ["Invalid credentials"]}`, "Invalid credentials"},
		{"field errors", http.StatusBadRequest, `{"username": ["already taken"], "email": ["Enter a valid email address."]}`, "email: Enter a valid email address."},
		{"empty body", http.StatusInternalServerError, ``, "HTTP 500"},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, "HTTP 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

			err := c.Request(context.Background(), http.MethodGet, "/dashboard/", nil, nil)
			apiErr, ok := gateway.AsAPIError(err)
			if !ok {
				t.Fatalf("expected *APIError, got %T", err)
			}
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, tt.want, gateway.Message(err, "fallback"))
		})
	}
}

func TestRequestTransportFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := gateway.NewClient(url, databases.NewMemoryTokenStore(""))
	_, err := c.GetEmergencies(context.Background())

	apiErr, ok := gateway.AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
	assert.NotEmpty(t, apiErr.Message)
}

func TestRequestTimeout(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""), gateway.WithTimeout(20*time.Millisecond))
	err := c.Request(context.Background(), http.MethodGet, "/dashboard/", nil, nil)

	_, ok := gateway.AsAPIError(err)
	assert.True(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestEmptySuccessBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/emergency-contacts/7/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))
	assert.NoError(t, c.DeleteEmergencyContact(context.Background(), "7"))
}

func TestListEnvelopes(t *testing.T) {
	for name, body := range map[string]string{
		"bare array": `[{"id": "1", "name": "City General"}, {"id": "2", "name": "St Mary"}]`,
		"results":    `{"count": 2, "results": [{"id": "1", "name": "City General"}, {"id": "2", "name": "St Mary"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

			hospitals, err := c.GetHospitals(context.Background())
			assert.NoError(t, err)
			if assert.Len(t, hospitals, 2) {
				assert.Equal(t, "City General", hospitals[0].Name)
				assert.Equal(t, "St Mary", hospitals[1].Name)
			}
		})
	}
}

func TestGetNearbyHospitals(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hospitals/nearby/", r.URL.Path)
		search := models.NearbySearch{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&search))
		assert.Equal(t, 12.97, search.Latitude)
		assert.Equal(t, 10, search.RadiusKM)
		assert.True(t, search.EmergencyServicesOnly)
		w.Write([]byte(`{"hospitals": [{"id": "h1", "name": "City General", "distance_to_user": 1.5}], "count": 1}`))
	})
	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

	hospitals, err := c.GetNearbyHospitals(context.Background(), models.NearbySearch{Latitude: 12.97, Longitude: 77.59, RadiusKM: 10, EmergencyServicesOnly: true})
	assert.NoError(t, err)
	if assert.Len(t, hospitals, 1) {
		assert.Equal(t, 1.5, *hospitals[0].DistanceToUser)
	}
}

func TestGetUnreadNotifications(t *testing.T) {
	for name, tt := range map[string]struct {
		body  string
		count int
	}{
		"envelope":   {`{"notifications": [{"id": "n1"}], "count": 4}`, 4},
		"bare array": {`[{"id": "n1"}, {"id": "n2"}]`, 2},
	} {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

			unread, err := c.GetUnreadNotifications(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.count, unread.Count)
			assert.NotEmpty(t, unread.Notifications)
		})
	}
}

func TestLoginPersistsToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		creds := models.Credentials{}
		json.NewDecoder(r.Body).Decode(&creds)
		assert.Equal(t, "asha", creds.Username)
		w.Write([]byte(`{"token": "tok-1", "user": {"id": "u1", "username": "asha"}}`))
	})
	store := databases.NewMemoryTokenStore("")
	c := gateway.NewClient(srv.URL, store)

	resp, err := c.Login(context.Background(), models.Credentials{Username: "asha", Password: "pw"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.True(t, c.HasToken())

	stored, _ := store.Load(context.Background())
	assert.Equal(t, "tok-1", stored)
}

func TestLoginAndRegisterOmitHeldToken(t *testing.T) {
	var auths []string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Invalid token."}`))
			return
		}
		w.Write([]byte(`{"token": "fresh"}`))
	})
	store := databases.NewMemoryTokenStore("revoked")
	c := gateway.NewClient(srv.URL, store)
	assert.NoError(t, c.LoadToken(context.Background()))

	_, err := c.Register(context.Background(), models.Registration{Username: "asha", Password: "pw", PasswordConfirm: "pw"})
	assert.NoError(t, err)
	_, err = c.Login(context.Background(), models.Credentials{Username: "asha", Password: "pw"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"", ""}, auths)

	stored, _ := store.Load(context.Background())
	assert.Equal(t, "fresh", stored)
}

func TestLoginFailureKeepsNoToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"non_field_errors": ["Invalid credentials"]}`))
	})
	store := databases.NewMemoryTokenStore("")
	c := gateway.NewClient(srv.URL, store)

	_, err := c.Login(context.Background(), models.Credentials{Username: "asha", Password: "wrong"})
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, c.HasToken())
}

func TestLoginSurvivesStoreFailure(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "tok-1"}`))
	})
	store := databases.NewMemoryTokenStore("")
	store.SaveErr = errors.New("disk full")
	c := gateway.NewClient(srv.URL, store)

	_, err := c.Login(context.Background(), models.Credentials{Username: "asha", Password: "pw"})
	assert.NoError(t, err)
	assert.True(t, c.HasToken())
}

func TestLogoutClearsTokenWhenRemoteFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	store := databases.NewMemoryTokenStore("tok-1")
	c := gateway.NewClient(url, store)
	assert.NoError(t, c.LoadToken(context.Background()))
	assert.True(t, c.HasToken())

	err := c.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, c.HasToken())
	stored, _ := store.Load(context.Background())
	assert.Empty(t, stored)
}

func TestLogoutSendsToken(t *testing.T) {
	var gotAuth string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message": "Logged out successfully"}`))
	})
	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore("tok-1"))
	assert.NoError(t, c.LoadToken(context.Background()))

	assert.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "Token tok-1", gotAuth)
	assert.False(t, c.HasToken())
}

func TestEmergencyCommandsBodies(t *testing.T) {
	bodies := map[string]map[string]interface{}{}
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body := map[string]interface{}{}
		json.Unmarshal(b, &body)
		bodies[r.URL.Path] = body
		w.Write([]byte(`{"emergency": {"id": "e1", "status": "CANCELLED"}, "message": "ok"}`))
	})
	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

	_, err := c.UpdateEmergencyStatus(context.Background(), "e1", models.StatusUpdate{Status: models.StatusCancelled, ResponseNotes: "Cancelled by patient"})
	assert.NoError(t, err)
	_, err = c.CompleteEmergency(context.Background(), "e1", models.Completion{CompletionNotes: "done"})
	assert.NoError(t, err)

	assert.Equal(t, "CANCELLED", bodies["/emergencies/e1/update-status/"]["status"])
	assert.Equal(t, "Cancelled by patient", bodies["/emergencies/e1/update-status/"]["response_notes"])
	assert.Equal(t, "done", bodies["/emergencies/e1/complete/"]["completion_notes"])
}

func TestCreateEmergencyOmitsMissingCoordinates(t *testing.T) {
	var body map[string]interface{}
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"emergency": {"id": "e9", "status": "PENDING"}, "notifications_sent": 2}`))
	})
	c := gateway.NewClient(srv.URL, databases.NewMemoryTokenStore(""))

	created, err := c.CreateEmergency(context.Background(), models.EmergencyRequest{Priority: models.PriorityHigh, Description: "chest pain", LocationAddress: "12 Main St"})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Emergency.Status)
	assert.Equal(t, 2, created.NotificationsSent)
	_, hasLat := body["location_latitude"]
	assert.False(t, hasLat)
	assert.Equal(t, "12 Main St", body["location_address"])
}

func TestCurrentUserID(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 42}).SignedString([]byte("secret"))
	assert.NoError(t, err)

	c := gateway.NewClient("http://unused", databases.NewMemoryTokenStore(signed))
	assert.Equal(t, "", c.CurrentUserID())
	assert.NoError(t, c.LoadToken(context.Background()))
	assert.Equal(t, "42", c.CurrentUserID())

	opaque := gateway.NewClient("http://unused", databases.NewMemoryTokenStore("9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"))
	assert.NoError(t, opaque.LoadToken(context.Background()))
	assert.Equal(t, "", opaque.CurrentUserID())
}
