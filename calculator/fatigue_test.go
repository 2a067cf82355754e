package calculator

import (
	"errors"
	"math"
	"testing"

	"orthos/model"
)

func TestFatigueLife(t *testing.T) {
	c := model.SNCurve{A: 500, B: 50}
	n, err := FatigueLife(c, 300)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(n-1e4) > 1e-6 {
		t.Errorf("life = %v, want 1e4", n)
	}
	// 应力幅达到 A 时立即失效
	for _, s := range []float64{500, 800} {
		if n, err := FatigueLife(c, s); err != nil || n != 0 {
			t.Errorf("σ=%v: life = %v, %v", s, n, err)
		}
	}
	if _, err := FatigueLife(model.SNCurve{A: 1e6, B: 1}, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("overflowing life: err = %v", err)
	}
}

func TestFatigueStrength(t *testing.T) {
	c := model.SNCurve{A: 500, B: 50}
	s, err := FatigueStrength(c, 1e4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s-300) > 1e-9 {
		t.Errorf("strength = %v, want 300", s)
	}
	if s, _ := FatigueStrength(c, 0); s != 500 {
		t.Errorf("N=0: %v, want A", s)
	}
	// 寿命和强度互为反函数
	n, _ := FatigueLife(c, 123)
	if s, _ := FatigueStrength(c, n); math.Abs(s-123) > 1e-9 {
		t.Errorf("round trip through N = %v gave %v", n, s)
	}
}

func TestFatigue(t *testing.T) {
	stress, cycles := 300.0, 1e6
	res, err := Fatigue(model.FatigueRequest{SNCurve: model.SNCurve{A: 500, B: 50}, StressAmplitude: &stress, Cycles: &cycles})
	if err != nil {
		t.Fatal(err)
	}
	if res.Life == nil || res.Strength == nil {
		t.Fatalf("result %+v", res)
	}
	if math.Abs(*res.Strength-200) > 1e-9 {
		t.Errorf("strength %v", *res.Strength)
	}

	cases := map[string]model.FatigueRequest{
		"no question": {SNCurve: model.SNCurve{A: 500, B: 50}},
		"zero slope":  {SNCurve: model.SNCurve{A: 500, B: 0}, Cycles: &cycles},
		"nan a":       {SNCurve: model.SNCurve{A: math.NaN(), B: 1}, StressAmplitude: &stress},
		"inf cycles":  {SNCurve: model.SNCurve{A: 500, B: 50}, Cycles: func() *float64 { v := math.Inf(1); return &v }()},
	}
	for name, req := range cases {
		if _, err := Fatigue(req); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: err = %v, want ErrInvalidParameter", name, err)
		}
	}
}
