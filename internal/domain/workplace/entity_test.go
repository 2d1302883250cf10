package workplace

import (
	"testing"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/geo"
)

// Test site from the registered company location.
var testSite = &Workplace{
	ID:           "wp-1",
	CompanyID:    "company-1",
	Latitude:     35.824364,
	Longitude:    128.756343,
	RadiusMeters: 100,
}

func TestWithinRadius(t *testing.T) {
	cases := []struct {
		name string
		user geo.Point
		want bool
	}{
		// ~50 m north of the site (0.00045 degrees of latitude).
		{"inside radius", geo.Point{Latitude: 35.824814, Longitude: 128.756343}, true},
		// ~150 m north of the site.
		{"outside radius", geo.Point{Latitude: 35.825714, Longitude: 128.756343}, false},
		{"at the site", geo.Point{Latitude: 35.824364, Longitude: 128.756343}, true},
	}
	for _, c := range cases {
		if got := WithinRadius(testSite, c.user); got != c.want {
			t.Errorf("%s: WithinRadius = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWithinRadiusNilWorkplaceFailsClosed(t *testing.T) {
	user := geo.Point{Latitude: 35.824364, Longitude: 128.756343}
	if WithinRadius(nil, user) {
		t.Error("WithinRadius(nil, user) = true, want false")
	}
}

func TestWithinRadiusInvalidCoordinateFailsClosed(t *testing.T) {
	if WithinRadius(testSite, geo.Point{Latitude: 91, Longitude: 0}) {
		t.Error("WithinRadius with invalid user point = true, want false")
	}
}

func TestEffectiveRadiusDefaultsWhenUnset(t *testing.T) {
	unset := &Workplace{Latitude: 35.824364, Longitude: 128.756343}
	if got := unset.EffectiveRadius(); got != DefaultRadiusMeters {
		t.Errorf("EffectiveRadius() = %v, want %v", got, DefaultRadiusMeters)
	}

	// A point ~50 m away is inside the defaulted 100 m radius.
	user := geo.Point{Latitude: 35.824814, Longitude: 128.756343}
	if !WithinRadius(unset, user) {
		t.Error("WithinRadius with defaulted radius = false, want true")
	}
}
