package viewmodels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
	"github.com/linesmerrill/emergency-dashboard/viewmodels/mocks"
)

func TestDashboardKeepsFirstFive(t *testing.T) {
	api := mocks.NewAPI(t)
	var list []models.Emergency
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		list = append(list, models.Emergency{ID: id})
	}
	api.On("GetDashboardStats", mock.Anything).Return(models.DashboardStats{MyEmergencies: 7}, nil)
	api.On("GetEmergencies", mock.Anything).Return(list, nil)

	summary, err := viewmodels.NewDashboard(api).Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 7, summary.Stats.MyEmergencies)
	if assert.Len(t, summary.Recent, 5) {
		assert.Equal(t, "a", summary.Recent[0].ID)
		assert.Equal(t, "e", summary.Recent[4].ID)
	}
}

func TestDashboardFailsWhenEitherReadFails(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("GetDashboardStats", mock.Anything).Return(models.DashboardStats{}, &gateway.APIError{StatusCode: 503, Message: "HTTP 503"})
	api.On("GetEmergencies", mock.Anything).Return([]models.Emergency{}, nil).Maybe()

	_, err := viewmodels.NewDashboard(api).Load(context.Background())
	assert.EqualError(t, err, "HTTP 503")
}
