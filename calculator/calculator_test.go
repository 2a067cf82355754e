package calculator

import (
	"testing"

	"orthos/model"
)

func TestCalculators(t *testing.T) {
	opts := Options{Workers: 3}
	calcs := map[string]Calculator{
		"plate": NewPlateCalculator(model.PlateParameters{LengthA: 1, WidthB: 2, Load: 10, ResolutionSteps: 9}, opts),
		"hole":  NewHoleCalculator(model.HoleStressParameters{GridResolution: 9, DomainExtentRatio: 3, HoleRadius: 1}, opts),
	}
	for name, c := range calcs {
		g, err := c.Calculate()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if len(g.X) < 2 || len(g.Y) < 2 {
			t.Errorf("%s: axes %v %v", name, g.X, g.Y)
		}
	}
	if n := (Options{}).maxGridPoints(); n != DefaultMaxGridPoints {
		t.Errorf("zero options limit = %d", n)
	}
}
