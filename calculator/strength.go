package calculator

import "orthos/model"

// NotchedStrength predicts the strength of a plate with a hole using the Point
// Stress Criterion (Whitney-Nuismer): failure occurs when the isotropic
// stress at distance d0 ahead of the hole edge reaches the unnotched strength.
//
//	σy(x, 0) / σ∞ = 1 + 0.5(R/x)² + 1.5(R/x)⁴,  x = R + d0
func NotchedStrength(p model.NotchedStrengthParameters) (float64, error) {
	if err := requirePositive("unnotchedStrength", p.UnnotchedStrength); err != nil {
		return 0, err
	}
	if err := requirePositive("holeRadius", p.HoleRadius); err != nil {
		return 0, err
	}
	if err := requireFinite("characteristicDistance", p.CharacteristicDistance); err != nil {
		return 0, err
	}
	if p.CharacteristicDistance < 0 {
		return 0, invalid("characteristicDistance", p.CharacteristicDistance, "must be >= 0")
	}

	xi := p.HoleRadius / (p.HoleRadius + p.CharacteristicDistance)
	xi2 := xi * xi
	kt := 1 + 0.5*xi2 + 1.5*xi2*xi2
	return p.UnnotchedStrength / kt, nil
}
