package calculator

import (
	"errors"
	"math"
	"testing"

	"orthos/model"
)

func relClose(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func TestMicromechanics(t *testing.T) {
	// 碳纤维/环氧，vf = 0.6
	res, err := Micromechanics(model.MicromechanicsParameters{FiberModulus: 230e9, MatrixModulus: 3.5e9, VolumeFraction: 0.6, Xi: DefaultHalpinTsaiXi})
	if err != nil {
		t.Fatal(err)
	}
	if !relClose(res.E1, 139.4e9, 1e-12) {
		t.Errorf("E1 = %v, want 139.4e9", res.E1)
	}
	eta := (230/3.5 - 1) / (230/3.5 + 2)
	want := 3.5e9 * (1 + 2*eta*0.6) / (1 - eta*0.6)
	if !relClose(res.E2, want, 1e-12) {
		t.Errorf("E2 = %v, want %v", res.E2, want)
	}
	// Halpin-Tsai 落在反混合律和混合律之间
	if !(res.E2Inverse < res.E2 && res.E2 < res.E1) {
		t.Errorf("bounds violated: %+v", res)
	}
}

func TestMicromechanicsLimits(t *testing.T) {
	ef, em := 70e9, 3e9
	for _, xi := range []float64{0, 1, DefaultHalpinTsaiXi, 10} {
		// 纯基体和纯纤维
		if v := HalpinTsaiE2(ef, em, 0, xi); !relClose(v, em, 1e-12) {
			t.Errorf("xi=%v vf=0: %v", xi, v)
		}
		if v := HalpinTsaiE2(ef, em, 1, xi); !relClose(v, ef, 1e-12) {
			t.Errorf("xi=%v vf=1: %v", xi, v)
		}
	}
	if v := RuleOfMixturesE1(ef, em, 1); v != ef {
		t.Errorf("E1 at vf=1: %v", v)
	}
	if v := InverseRuleOfMixturesE2(ef, em, 0); !relClose(v, em, 1e-12) {
		t.Errorf("inverse E2 at vf=0: %v", v)
	}
	// ξ = 0 时 Halpin-Tsai 退化为反混合律
	for _, vf := range []float64{0.1, 0.45, 0.7} {
		if a, b := HalpinTsaiE2(ef, em, vf, 0), InverseRuleOfMixturesE2(ef, em, vf); !relClose(a, b, 1e-12) {
			t.Errorf("vf=%v: %v != %v", vf, a, b)
		}
	}
}

func TestMicromechanicsInvalid(t *testing.T) {
	cases := map[string]model.MicromechanicsParameters{
		"zero fiber":      {FiberModulus: 0, MatrixModulus: 1, VolumeFraction: 0.5, Xi: 2},
		"negative matrix": {FiberModulus: 1, MatrixModulus: -1, VolumeFraction: 0.5, Xi: 2},
		"vf above one":    {FiberModulus: 1, MatrixModulus: 1, VolumeFraction: 1.1, Xi: 2},
		"negative vf":     {FiberModulus: 1, MatrixModulus: 1, VolumeFraction: -0.1, Xi: 2},
		"nan vf":          {FiberModulus: 1, MatrixModulus: 1, VolumeFraction: math.NaN(), Xi: 2},
		"negative xi":     {FiberModulus: 1, MatrixModulus: 1, VolumeFraction: 0.5, Xi: -1},
		"ratio overflow":  {FiberModulus: 1e308, MatrixModulus: 1e-308, VolumeFraction: 0.5, Xi: 2},
	}
	for name, p := range cases {
		if _, err := Micromechanics(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: err = %v, want ErrInvalidParameter", name, err)
		}
	}
}
