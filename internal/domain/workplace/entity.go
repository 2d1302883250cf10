package workplace

import (
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/geo"
)

// DefaultRadiusMeters is applied when a workplace is registered without an
// explicit radius. A configured workplace with an unset radius is not the same
// as having no workplace at all: the former falls back to this default, the
// latter fails closed.
const DefaultRadiusMeters = 100.0

// Workplace is the single registered work site of a company. Clock-in and
// clock-out are only permitted within RadiusMeters of its location.
type Workplace struct {
	ID           string
	CompanyID    string
	Latitude     float64
	Longitude    float64
	Address      string
	RadiusMeters float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location returns the workplace coordinates as a geo.Point.
func (w *Workplace) Location() geo.Point {
	return geo.Point{Latitude: w.Latitude, Longitude: w.Longitude}
}

// EffectiveRadius returns the configured radius, or DefaultRadiusMeters when
// the radius is unset or non-positive.
func (w *Workplace) EffectiveRadius() float64 {
	if w.RadiusMeters <= 0 {
		return DefaultRadiusMeters
	}
	return w.RadiusMeters
}

// WithinRadius reports whether user is inside the workplace geofence.
// A nil workplace fails closed: no registered work site means no eligible
// location. Invalid coordinates also fail closed.
func WithinRadius(w *Workplace, user geo.Point) bool {
	if w == nil {
		return false
	}
	distance, err := geo.Distance(user, w.Location())
	if err != nil {
		return false
	}
	return distance <= w.EffectiveRadius()
}
