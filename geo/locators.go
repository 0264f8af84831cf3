package geo

import (
	"context"
	"net/url"
)

// Form field names filled by the page script from the browser geolocation API
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldError     = "geolocation_error"
)

// Fixed always reports c. It backs a device location set in configuration.
func Fixed(c Coordinates) Locator {
	return LocatorFunc(func(ctx context.Context) (Coordinates, error) {
		return c, nil
	})
}

// Form reads the position the browser posted with a form. A non-empty
// error field means the user refused or the browser had no position.
func Form(values url.Values) Locator {
	return LocatorFunc(func(ctx context.Context) (Coordinates, error) {
		if values.Get(FieldError) != "" {
			return Coordinates{}, ErrDenied
		}
		return ParseCoordinates(values.Get(FieldLatitude), values.Get(FieldLongitude))
	})
}

// First tries each non-nil locator in order and reports the first position found
func First(locators ...Locator) Locator {
	return LocatorFunc(func(ctx context.Context) (Coordinates, error) {
		for _, l := range locators {
			if l == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return Coordinates{}, err
			}
			c, err := l.Locate(ctx)
			if err == nil && c.Valid() {
				return c, nil
			}
		}
		return Coordinates{}, ErrUnavailable
	})
}
