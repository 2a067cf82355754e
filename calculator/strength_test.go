package calculator

import (
	"errors"
	"math"
	"testing"

	"orthos/model"
)

func TestNotchedStrength(t *testing.T) {
	// 1000 MPa，孔半径 5mm，特征距离 1mm
	p := model.NotchedStrengthParameters{UnnotchedStrength: 1000e6, HoleRadius: 0.005, CharacteristicDistance: 0.001}
	s, err := NotchedStrength(p)
	if err != nil {
		t.Fatal(err)
	}
	xi := 0.005 / 0.006
	want := 1000e6 / (1 + 0.5*xi*xi + 1.5*math.Pow(xi, 4))
	if math.Abs(s-want) > 1e-6 {
		t.Errorf("strength = %v, want %v", s, want)
	}
	if s >= p.UnnotchedStrength {
		t.Errorf("notched strength %v not below unnotched %v", s, p.UnnotchedStrength)
	}
}

func TestNotchedStrengthLimits(t *testing.T) {
	// d0 = 0 时取孔边应力集中系数 Kt = 3
	s, err := NotchedStrength(model.NotchedStrengthParameters{UnnotchedStrength: 300, HoleRadius: 1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s-100) > tol {
		t.Errorf("d0=0: %v, want 100", s)
	}
	s, err = NotchedStrength(model.NotchedStrengthParameters{UnnotchedStrength: 300, HoleRadius: 1, CharacteristicDistance: 1e6})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s-300) > 1e-6 {
		t.Errorf("large d0: %v, want about 300", s)
	}
}

func TestNotchedStrengthInvalid(t *testing.T) {
	cases := []model.NotchedStrengthParameters{
		{UnnotchedStrength: 0, HoleRadius: 1},
		{UnnotchedStrength: 1, HoleRadius: -1},
		{UnnotchedStrength: 1, HoleRadius: 1, CharacteristicDistance: -0.1},
		{UnnotchedStrength: math.Inf(1), HoleRadius: 1},
		{UnnotchedStrength: 1, HoleRadius: 1, CharacteristicDistance: math.NaN()},
	}
	for _, p := range cases {
		if _, err := NotchedStrength(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%+v: err = %v", p, err)
		}
	}
}
