// Package geo resolves the patient's position for a single request. A
// resolution is one bounded attempt that never fails: callers get either
// coordinates or nothing.
package geo

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a resolution when no timeout is configured
const DefaultTimeout = 10 * time.Second

const earthRadiusKm = 6371.0

var (
	// ErrUnavailable is returned by a locator that has no position to offer
	ErrUnavailable = errors.New("location unavailable")
	// ErrDenied is returned when the user refused to share a position
	ErrDenied = errors.New("location permission denied")
)

// Coordinates is a point in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether c lies within the WGS84 ranges
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180 &&
		!math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude)
}

// LatitudeString formats the latitude the way the API stores it
func (c Coordinates) LatitudeString() string {
	return formatDegrees(c.Latitude)
}

// LongitudeString formats the longitude the way the API stores it
func (c Coordinates) LongitudeString() string {
	return formatDegrees(c.Longitude)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// DistanceKm is the great circle distance between a and b
func DistanceKm(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ParseCoordinates reads a pair of decimal-degree strings
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return Coordinates{}, ErrUnavailable
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinates{}, err
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinates{}, err
	}
	c := Coordinates{Latitude: la, Longitude: lo}
	if !c.Valid() {
		return Coordinates{}, ErrUnavailable
	}
	return c, nil
}

// Locator is a source of the current position
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(ctx context.Context) (Coordinates, error)

// Locate calls f
func (f LocatorFunc) Locate(ctx context.Context) (Coordinates, error) {
	return f(ctx)
}

// Resolve makes one attempt to locate, bounded by timeout. Any failure,
// including a nil locator or a locator that outlives the timeout, gives
// ok == false.
func Resolve(ctx context.Context, l Locator, timeout time.Duration) (Coordinates, bool) {
	if l == nil {
		return Coordinates{}, false
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		c   Coordinates
		err error
	}
	done := make(chan result, 1)
	go func() {
		c, err := l.Locate(ctx)
		done <- result{c, err}
	}()

	select {
	case <-ctx.Done():
		zap.S().Debugw("geolocation timed out", "timeout", timeout)
		return Coordinates{}, false
	case r := <-done:
		if r.err != nil {
			zap.S().Debugw("geolocation unavailable", "error", r.err)
			return Coordinates{}, false
		}
		if !r.c.Valid() {
			return Coordinates{}, false
		}
		return r.c, true
	}
}
