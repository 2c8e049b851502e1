// utils/tz.go
package utils

import (
	"sync"

	"github.com/ringsaturn/tzf"
)

var (
	finderOnce sync.Once
	finder     tzf.F
	finderErr  error
)

// DetectTimezone maps coordinates to an IANA timezone name, falling back to
// UTC over oceans or if the embedded polygon data fails to load.
func DetectTimezone(lat, lon float64) string {
	finderOnce.Do(func() {
		finder, finderErr = tzf.NewDefaultFinder()
	})
	if finderErr != nil {
		return "UTC"
	}
	if name := finder.GetTimezoneName(lon, lat); name != "" {
		return name
	}
	return "UTC"
}
