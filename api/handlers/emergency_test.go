package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func emergency(id, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"status":           status,
		"priority":         "HIGH",
		"description":      "Chest pain",
		"location_address": "12 MG Road",
		"created_at":       "2026-10-19T10:00:00Z",
	}
}

func TestDashboardHandler(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/dashboard/", http.StatusOK, map[string]int{"my_emergencies": 7, "active_emergencies": 2})
	var list []map[string]interface{}
	for i := 0; i < 7; i++ {
		list = append(list, emergency(fmt.Sprintf("e%d", i), "PENDING"))
	}
	fake.JSON("GET", "/emergencies/", http.StatusOK, map[string]interface{}{"results": list})

	req, _ := http.NewRequest("GET", "/", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, "My emergencies: 7")
	assert.Contains(t, body, `href="/emergencies/e4"`)
	assert.NotContains(t, body, `href="/emergencies/e5"`)
	assert.Contains(t, body, "All 7 emergencies")
	assert.Contains(t, body, "Asha Rao")
}

func TestCreateEmergencyHandlerSendsLocation(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("POST", "/emergencies/", http.StatusCreated, map[string]interface{}{
		"emergency":          emergency("e1", "PENDING"),
		"notifications_sent": 3,
	})

	response := executeRequest(a, postForm("/emergencies", url.Values{
		"priority":         {"CRITICAL"},
		"description":      {"Fell down the stairs"},
		"location_address": {"12 MG Road"},
		"latitude":         {"12.9716"},
		"longitude":        {"77.5946"},
	}))

	checkResponseCode(t, http.StatusSeeOther, response.Code)
	assert.Equal(t, "/emergencies/e1?done=raised", response.Header().Get("Location"))

	calls := fake.Calls("POST", "/emergencies/")
	if assert.Len(t, calls, 1) {
		assert.Equal(t, "CRITICAL", calls[0].Body["priority"])
		assert.Equal(t, "12.971600", calls[0].Body["location_latitude"])
		assert.Equal(t, "77.594600", calls[0].Body["location_longitude"])
		assert.Equal(t, "Token stored-token", calls[0].Authorization)
	}
}

func TestCreateEmergencyHandlerWithoutLocation(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("POST", "/emergencies/", http.StatusCreated, map[string]interface{}{"emergency": emergency("e2", "PENDING")})

	response := executeRequest(a, postForm("/emergencies", url.Values{
		"description":       {"Breathing trouble"},
		"location_address":  {"12 MG Road"},
		"geolocation_error": {"User denied Geolocation"},
	}))

	checkResponseCode(t, http.StatusSeeOther, response.Code)
	calls := fake.Calls("POST", "/emergencies/")
	if assert.Len(t, calls, 1) {
		assert.Equal(t, "HIGH", calls[0].Body["priority"])
		assert.NotContains(t, calls[0].Body, "location_latitude")
		assert.NotContains(t, calls[0].Body, "location_longitude")
		assert.Equal(t, "12 MG Road", calls[0].Body["location_address"])
	}
}

func TestCreateEmergencyHandlerInvalidPriority(t *testing.T) {
	a, fake, _ := signedIn(t)

	response := executeRequest(a, postForm("/emergencies", url.Values{
		"priority":    {"URGENT"},
		"description": {"Help"},
	}))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Contains(t, response.Body.String(), "invalid priority")
	assert.Empty(t, fake.Calls("POST", "/emergencies/"))
}

func TestEmergencyByIDHandlerOffersAllowedActions(t *testing.T) {
	tests := []struct {
		status  string
		want    string
		notWant string
	}{
		{"PENDING", `action="/emergencies/e1/cancel"`, `action="/emergencies/e1/resolve"`},
		{"IN_PROGRESS", `action="/emergencies/e1/resolve"`, `action="/emergencies/e1/cancel"`},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			a, fake, _ := signedIn(t)
			fake.JSON("GET", "/emergencies/e1/", http.StatusOK, emergency("e1", tt.status))
			fake.JSON("GET", "/emergencies/e1/notifications/", http.StatusOK, map[string]interface{}{
				"notifications": []map[string]string{{"id": "n1", "title": "Hospital alerted", "message": "City Hospital notified"}},
			})

			req, _ := http.NewRequest("GET", "/emergencies/e1", nil)
			response := executeRequest(a, req)

			checkResponseCode(t, http.StatusOK, response.Code)
			assert.Contains(t, response.Body.String(), tt.want)
			assert.NotContains(t, response.Body.String(), tt.notWant)
			assert.Contains(t, response.Body.String(), "Hospital alerted")
		})
	}
}

func TestEmergencyByIDHandlerTerminalHasNoActions(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/emergencies/e1/", http.StatusOK, emergency("e1", "COMPLETED"))

	req, _ := http.NewRequest("GET", "/emergencies/e1", nil)
	response := executeRequest(a, req)

	// the notifications endpoint is missing, the detail still shows
	checkResponseCode(t, http.StatusOK, response.Code)
	assert.NotContains(t, response.Body.String(), `action="/emergencies/e1/`)
	assert.Contains(t, response.Body.String(), "Notifications could not be loaded")
}

func TestCancelEmergencyHandler(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/emergencies/e1/", http.StatusOK, emergency("e1", "PENDING"))
	fake.JSON("POST", "/emergencies/e1/update-status/", http.StatusOK, map[string]interface{}{"emergency": emergency("e1", "CANCELLED")})

	response := executeRequest(a, postForm("/emergencies/e1/cancel", url.Values{}))

	checkResponseCode(t, http.StatusSeeOther, response.Code)
	assert.Equal(t, "/emergencies/e1?done=cancelled", response.Header().Get("Location"))
	calls := fake.Calls("POST", "/emergencies/e1/update-status/")
	if assert.Len(t, calls, 1) {
		assert.Equal(t, "CANCELLED", calls[0].Body["status"])
		assert.Equal(t, "Cancelled by patient", calls[0].Body["response_notes"])
	}
}

func TestCancelEmergencyHandlerNotAllowed(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/emergencies/e1/", http.StatusOK, emergency("e1", "DISPATCHED"))
	fake.JSON("GET", "/emergencies/e1/notifications/", http.StatusOK, []interface{}{})

	response := executeRequest(a, postForm("/emergencies/e1/cancel", url.Values{}))

	checkResponseCode(t, http.StatusConflict, response.Code)
	assert.Contains(t, response.Body.String(), "action not allowed")
	assert.Empty(t, fake.Calls("POST", "/emergencies/e1/update-status/"))
}

func TestResolveEmergencyHandler(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/emergencies/e1/", http.StatusOK, emergency("e1", "IN_PROGRESS"))
	fake.JSON("POST", "/emergencies/e1/complete/", http.StatusOK, map[string]interface{}{"message": "done"})

	response := executeRequest(a, postForm("/emergencies/e1/resolve", url.Values{}))

	checkResponseCode(t, http.StatusSeeOther, response.Code)
	assert.Equal(t, "/emergencies/e1?done=resolved", response.Header().Get("Location"))
	calls := fake.Calls("POST", "/emergencies/e1/complete/")
	if assert.Len(t, calls, 1) {
		assert.Equal(t, "Emergency resolved through patient interface", calls[0].Body["completion_notes"])
	}
}

func TestEmergenciesHandlerHistory(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/users/7/emergency-history/", http.StatusOK, map[string]interface{}{
		"emergencies": []interface{}{emergency("old-one", "COMPLETED")},
	})

	req, _ := http.NewRequest("GET", "/emergencies?history=1", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `href="/emergencies/old-one"`)
	assert.Contains(t, response.Body.String(), "Current list")
}

func TestRejectedTokenEndsSession(t *testing.T) {
	a, fake, store := signedIn(t)
	fake.JSON("GET", "/emergencies/", http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})

	req, _ := http.NewRequest("GET", "/emergencies", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusSeeOther, response.Code)
	assert.Equal(t, "/login?done=expired", response.Header().Get("Location"))
	assert.False(t, a.Session.Authenticated())

	token, _ := store.Load(context.Background())
	assert.Empty(t, token)
}

func TestAPIUnavailableShowsErrorPage(t *testing.T) {
	a, fake, _ := signedIn(t)
	fake.JSON("GET", "/emergencies/", http.StatusInternalServerError, map[string]string{"message": "Database unavailable"})

	req, _ := http.NewRequest("GET", "/emergencies", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusBadGateway, response.Code)
	assert.Contains(t, response.Body.String(), "Database unavailable")
	assert.True(t, a.Session.Authenticated())
}
