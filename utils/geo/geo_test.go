package geo_test

import (
	"math"
	"testing"

	"github.com/hendrawans/marketplace/utils/geo"
)

func TestHaversine_ZeroWhenCoincident(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		if d := geo.Haversine(p[0], p[1], p[0], p[1]); d != 0 {
			t.Fatalf("Haversine(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	ab := geo.Haversine(52.5200, 13.4050, 48.8566, 2.3522)
	ba := geo.Haversine(48.8566, 2.3522, 52.5200, 13.4050)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("Haversine not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversine_QuarterGreatCircle(t *testing.T) {
	// (0,0) to (0,90) spans a quarter of the sphere's circumference.
	got := geo.Haversine(0, 0, 0, 90)
	want := 2 * math.Pi * 6371.0 / 4
	if math.Abs(got-want) > 0.5 {
		t.Fatalf("Haversine(0,0 -> 0,90) = %v, want ~%v", got, want)
	}
	if math.Abs(got-10007.5) > 1.0 {
		t.Fatalf("Haversine(0,0 -> 0,90) = %v, want ~10007.5", got)
	}
}

func TestRoundKm(t *testing.T) {
	if got := geo.RoundKm(12.345678); got != 12.35 {
		t.Fatalf("RoundKm(12.345678) = %v, want 12.35", got)
	}
	if got := geo.RoundKm(12.344); got != 12.34 {
		t.Fatalf("RoundKm(12.344) = %v, want 12.34", got)
	}
}
