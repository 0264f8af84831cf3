package gateway

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// GetDashboardStats returns the patient's dashboard counters
func (c *Client) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	stats := models.DashboardStats{}
	err := c.get(ctx, "/dashboard/", &stats)
	return stats, err
}
