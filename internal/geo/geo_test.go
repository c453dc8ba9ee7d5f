package geo

import (
	"math"
	"testing"
)

func TestDistanceM_ZeroForSamePoint(t *testing.T) {
	d := DistanceM(52.2297, 21.0122, 52.2297, 21.0122)
	if d != 0 {
		t.Errorf("expected 0 distance for identical points, got %f", d)
	}
}

func TestDistanceM_KnownCityPair(t *testing.T) {
	// Warsaw to Krakow is roughly 252 km as the crow flies.
	d := DistanceM(52.2297, 21.0122, 50.0647, 19.9450)
	if d < 245000 || d > 260000 {
		t.Errorf("Warsaw-Krakow distance out of range: %f m", d)
	}
}

func TestDistanceM_ShortHop(t *testing.T) {
	// Two points ~111 m apart along a meridian (0.001 deg latitude).
	d := DistanceM(52.2297, 21.0122, 52.2307, 21.0122)
	if math.Abs(d-111.2) > 2 {
		t.Errorf("expected ~111 m, got %f m", d)
	}
}

func TestDistanceM_Symmetric(t *testing.T) {
	a := DistanceM(52.2297, 21.0122, 50.0647, 19.9450)
	b := DistanceM(50.0647, 19.9450, 52.2297, 21.0122)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}
