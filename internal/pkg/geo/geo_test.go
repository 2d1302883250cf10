package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	p := Point{Latitude: 35.824364, Longitude: 128.756343}
	d, err := Distance(p, p)
	if err != nil {
		t.Fatalf("Distance(p, p) returned error: %v", err)
	}
	if d != 0 {
		t.Errorf("Distance(p, p) = %v, want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Point{35.824364, 128.756343}, Point{35.825364, 128.757343}},
		{Point{-33.8688, 151.2093}, Point{51.5074, -0.1278}},
		{Point{0, 0}, Point{0, 180}},
		{Point{89.9, -179.9}, Point{-89.9, 179.9}},
	}
	for _, c := range cases {
		ab, err := Distance(c.a, c.b)
		if err != nil {
			t.Fatalf("Distance(%v, %v) returned error: %v", c.a, c.b, err)
		}
		ba, err := Distance(c.b, c.a)
		if err != nil {
			t.Fatalf("Distance(%v, %v) returned error: %v", c.b, c.a, err)
		}
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Roughly 111 meters per 0.001 degree of latitude.
	a := Point{Latitude: 35.824364, Longitude: 128.756343}
	b := Point{Latitude: 35.825364, Longitude: 128.756343}
	d, err := Distance(a, b)
	if err != nil {
		t.Fatalf("Distance returned error: %v", err)
	}
	if d < 105 || d > 118 {
		t.Errorf("Distance = %v, want about 111 m", d)
	}
}

func TestDistanceInvalidCoordinates(t *testing.T) {
	valid := Point{Latitude: 35.8, Longitude: 128.7}
	invalid := []Point{
		{Latitude: 90.1, Longitude: 0},
		{Latitude: -90.1, Longitude: 0},
		{Latitude: 0, Longitude: 180.1},
		{Latitude: 0, Longitude: -180.1},
	}
	for _, p := range invalid {
		if _, err := Distance(valid, p); err != ErrInvalidCoordinate {
			t.Errorf("Distance(valid, %v) error = %v, want ErrInvalidCoordinate", p, err)
		}
		if _, err := Distance(p, valid); err != ErrInvalidCoordinate {
			t.Errorf("Distance(%v, valid) error = %v, want ErrInvalidCoordinate", p, err)
		}
	}
}
