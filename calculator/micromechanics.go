package calculator

import "orthos/model"

// DefaultHalpinTsaiXi 圆截面纤维横向模量常用的 ξ
const DefaultHalpinTsaiXi = 2.0

func validateMicromechanics(p model.MicromechanicsParameters) error {
	if err := requirePositive("fiberModulus", p.FiberModulus); err != nil {
		return err
	}
	if err := requirePositive("matrixModulus", p.MatrixModulus); err != nil {
		return err
	}
	if err := requireFinite("volumeFraction", p.VolumeFraction); err != nil {
		return err
	}
	if p.VolumeFraction < 0 || p.VolumeFraction > 1 {
		return invalid("volumeFraction", p.VolumeFraction, "must be in [0, 1]")
	}
	if err := requireFinite("xi", p.Xi); err != nil {
		return err
	}
	if p.Xi < 0 {
		return invalid("xi", p.Xi, "must be >= 0")
	}
	return nil
}

// RuleOfMixturesE1 纵向模量 E1 = Ef·vf + Em·(1 - vf)
func RuleOfMixturesE1(ef, em, vf float64) float64 {
	return ef*vf + em*(1-vf)
}

// InverseRuleOfMixturesE2 横向模量 1/E2 = vf/Ef + (1 - vf)/Em
func InverseRuleOfMixturesE2(ef, em, vf float64) float64 {
	return 1 / (vf/ef + (1-vf)/em)
}

// HalpinTsaiE2 横向模量
//
//	E2 = Em(1 + ξηvf) / (1 - ηvf),  η = (Ef/Em - 1) / (Ef/Em + ξ)
func HalpinTsaiE2(ef, em, vf, xi float64) float64 {
	ratio := ef / em
	eta := (ratio - 1) / (ratio + xi)
	return em * (1 + xi*eta*vf) / (1 - eta*vf)
}

// Micromechanics estimates the moduli of a unidirectional lamina from its fiber
// and matrix moduli: E1 by the rule of mixtures, E2 by Halpin-Tsai and by the
// inverse rule of mixtures.
func Micromechanics(p model.MicromechanicsParameters) (model.MicromechanicsResult, error) {
	if err := validateMicromechanics(p); err != nil {
		return model.MicromechanicsResult{}, err
	}
	res := model.MicromechanicsResult{
		E1:        RuleOfMixturesE1(p.FiberModulus, p.MatrixModulus, p.VolumeFraction),
		E2:        HalpinTsaiE2(p.FiberModulus, p.MatrixModulus, p.VolumeFraction, p.Xi),
		E2Inverse: InverseRuleOfMixturesE2(p.FiberModulus, p.MatrixModulus, p.VolumeFraction),
	}
	// Ef/Em 溢出时 η 为 NaN
	if !isFinite(res.E1) || !isFinite(res.E2) || !isFinite(res.E2Inverse) {
		return model.MicromechanicsResult{}, invalid("fiberModulus", p.FiberModulus, "modulus ratio out of range")
	}
	return res, nil
}
