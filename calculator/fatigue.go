package calculator

import (
	"math"

	"orthos/model"
)

func validateSNCurve(c model.SNCurve) error {
	if err := requireFinite("a", c.A); err != nil {
		return err
	}
	return requirePositive("b", c.B)
}

// FatigueLife 应力幅 σ 下的失效循环次数 N = 10^((A - σ)/B)，σ >= A 时立即失效，返回 0
func FatigueLife(c model.SNCurve, stressAmplitude float64) (float64, error) {
	if err := validateSNCurve(c); err != nil {
		return 0, err
	}
	if err := requireFinite("stressAmplitude", stressAmplitude); err != nil {
		return 0, err
	}
	if stressAmplitude >= c.A {
		return 0, nil
	}
	life := math.Pow(10, (c.A-stressAmplitude)/c.B)
	if math.IsInf(life, 0) {
		return 0, invalid("stressAmplitude", stressAmplitude, "life exceeds float64 range")
	}
	return life, nil
}

// FatigueStrength N 次循环对应的疲劳强度 A - B·log10(N)，N <= 0 时返回 A
func FatigueStrength(c model.SNCurve, cycles float64) (float64, error) {
	if err := validateSNCurve(c); err != nil {
		return 0, err
	}
	if err := requireFinite("cycles", cycles); err != nil {
		return 0, err
	}
	if cycles <= 0 {
		return c.A, nil
	}
	s := c.A - c.B*math.Log10(cycles)
	if !isFinite(s) {
		return 0, invalid("cycles", cycles, "strength exceeds float64 range")
	}
	return s, nil
}

// Fatigue evaluates whichever of life and strength the request asks for.
func Fatigue(req model.FatigueRequest) (model.FatigueResult, error) {
	var res model.FatigueResult
	if req.StressAmplitude == nil && req.Cycles == nil {
		if err := validateSNCurve(req.SNCurve); err != nil {
			return res, err
		}
		return res, invalid("stressAmplitude", 0, "stress amplitude or cycles required")
	}
	if req.StressAmplitude != nil {
		life, err := FatigueLife(req.SNCurve, *req.StressAmplitude)
		if err != nil {
			return model.FatigueResult{}, err
		}
		res.Life = &life
	}
	if req.Cycles != nil {
		s, err := FatigueStrength(req.SNCurve, *req.Cycles)
		if err != nil {
			return model.FatigueResult{}, err
		}
		res.Strength = &s
	}
	return res, nil
}
