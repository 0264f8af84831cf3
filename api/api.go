// Package api holds the HTTP middleware shared by every dashboard route.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// HealthCheckHandler reports that the process is serving
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{Alive: true})
	_, _ = w.Write(b)
}
