package viewmodels

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// RecentLimit is how many emergencies the dashboard shows
const RecentLimit = 5

// Dashboard is the landing page view-model
type Dashboard struct {
	api DashboardAPI
}

// NewDashboard returns the dashboard view-model
func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

// Summary is what the landing page shows
type Summary struct {
	Stats  models.DashboardStats
	Recent []models.Emergency
	Total  int
}

// Load reads the counters and the emergency list concurrently
func (d *Dashboard) Load(ctx context.Context) (Summary, error) {
	var (
		stats       models.DashboardStats
		emergencies []models.Emergency
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = d.api.GetDashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		emergencies, err = d.api.GetEmergencies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	recent := emergencies
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	return Summary{Stats: stats, Recent: recent, Total: len(emergencies)}, nil
}
