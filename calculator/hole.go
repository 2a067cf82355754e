package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"
	"orthos/model"
)

// 圆孔应力集中，单向拉伸（x 方向，远场应力为 1）
//
//	σθ(R, θ) = 1 - 2cos(2θ)
//	σ(r, θ)  = 1 + (σθ(R, θ) - 1) * (R/r)²
type HoleCalculator struct {
	params    model.HoleStressParameters
	maxPoints int
	e         *executor
}

func NewHoleCalculator(p model.HoleStressParameters, opts Options) *HoleCalculator {
	return &HoleCalculator{params: p, maxPoints: opts.maxGridPoints(), e: newExecutor(opts.Workers)}
}

func validateHole(p model.HoleStressParameters, maxPoints int) error {
	if err := requirePositive("holeRadius", p.HoleRadius); err != nil {
		return err
	}
	if err := requireFinite("domainExtentRatio", p.DomainExtentRatio); err != nil {
		return err
	}
	if p.DomainExtentRatio <= 1 {
		return invalid("domainExtentRatio", p.DomainExtentRatio, "must be > 1")
	}
	if p.GridResolution < 2 {
		return invalid("gridResolution", float64(p.GridResolution), "must be >= 2")
	}
	if !gridFits(p.GridResolution, maxPoints) {
		return invalid("gridResolution", float64(p.GridResolution), "grid too large")
	}
	return nil
}

// HoopStressAtBoundary Kirsch 解在孔边 (r = R) 的环向应力，远场拉应力为 1
func HoopStressAtBoundary(theta float64) float64 {
	return 1 - 2*math.Cos(2*theta)
}

// StressConcentration returns the stress concentration factor at (x, y) for a
// hole of the given radius centred at the origin, or an excluded cell when the
// point lies inside the hole.
func StressConcentration(x, y, radius float64) model.Cell {
	r := math.Hypot(x, y)
	// 孔内的点必须在计算衰减系数之前排除，避免 r 接近 0 时的除法
	if r < radius {
		return model.Excluded()
	}
	theta := math.Atan2(y, x)
	boundary := HoopStressAtBoundary(theta)
	ratio := radius / r
	decay := ratio * ratio
	return model.Value(1 + (boundary-1)*decay)
}

func (c *HoleCalculator) Calculate() (*model.GridField, error) {
	p := c.params
	if err := validateHole(p, c.maxPoints); err != nil {
		return nil, err
	}

	half := p.DomainExtentRatio * p.HoleRadius
	if !isFinite(half) {
		return nil, invalid("domainExtentRatio*holeRadius", half, "must be finite")
	}
	axis := model.GridAxis(symmetricSpace(half, p.GridResolution))
	if err := axis.Validate(); err != nil {
		return nil, invalid("holeRadius", p.HoleRadius, "grid spacing not representable")
	}

	// x 和 y 共用同一组坐标，但各自持有一份，避免调用方修改时互相影响
	x := axis
	y := append(model.GridAxis(nil), axis...)

	field := model.NewGridField(x, y)
	cost, err := c.e.dispatchTask(len(y), func(t task) error {
		for j := t.start; j < t.end; j++ {
			row := field.Z[j]
			for i := range row {
				row[i] = StressConcentration(x[i], y[j], p.HoleRadius)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"gridResolution":    p.GridResolution,
		"domainExtentRatio": p.DomainExtentRatio,
		"holeRadius":        p.HoleRadius,
		"cost":              cost,
	}).Debug("计算圆孔应力集中场")
	return field, nil
}
