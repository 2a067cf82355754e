package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"
	"orthos/model"
)

// DeflectionScale converts load units into a visually plausible deflection.
// It is a presentation calibration, not derived from plate stiffness.
const DeflectionScale = 10000.0

// 简支矩形板挠度，Navier 级数只取 m=1, n=1 一项
//
//	w(x, y) = load / DeflectionScale * sin(πx/a) * sin(πy/b)
type PlateCalculator struct {
	params    model.PlateParameters
	maxPoints int
	e         *executor
}

// NewPlateCalculator 参数在 Calculate 时校验
func NewPlateCalculator(p model.PlateParameters, opts Options) *PlateCalculator {
	return &PlateCalculator{params: p, maxPoints: opts.maxGridPoints(), e: newExecutor(opts.Workers)}
}

func validatePlate(p model.PlateParameters, maxPoints int) error {
	if err := requirePositive("lengthA", p.LengthA); err != nil {
		return err
	}
	if err := requirePositive("widthB", p.WidthB); err != nil {
		return err
	}
	if err := requireFinite("load", p.Load); err != nil {
		return err
	}
	if p.ResolutionSteps < 1 {
		return invalid("resolutionSteps", float64(p.ResolutionSteps), "must be >= 1")
	}
	// 先比较 steps 本身，steps+1 才不会溢出
	if p.ResolutionSteps >= maxPoints || !gridFits(p.ResolutionSteps+1, maxPoints) {
		return invalid("resolutionSteps", float64(p.ResolutionSteps), "grid too large")
	}
	return nil
}

// sineProfile 计算 sin(π * axis[i] / length)，两端为精确的 0（简支边界）
func sineProfile(axis []float64, length float64) []float64 {
	res := make([]float64, len(axis))
	for i := 1; i < len(axis)-1; i++ {
		res[i] = math.Sin(math.Pi * axis[i] / length)
	}
	return res
}

func (c *PlateCalculator) Calculate() (*model.GridField, error) {
	p := c.params
	if err := validatePlate(p, c.maxPoints); err != nil {
		return nil, err
	}

	n := p.ResolutionSteps + 1
	x := model.GridAxis(linSpace(0, p.LengthA, n))
	y := model.GridAxis(linSpace(0, p.WidthB, n))
	if err := x.Validate(); err != nil {
		return nil, invalid("lengthA", p.LengthA, "grid spacing not representable")
	}
	if err := y.Validate(); err != nil {
		return nil, invalid("widthB", p.WidthB, "grid spacing not representable")
	}
	sx := sineProfile(x, p.LengthA)
	sy := sineProfile(y, p.WidthB)
	amplitude := p.Load / DeflectionScale

	field := model.NewGridField(x, y)
	cost, err := c.e.dispatchTask(len(y), func(t task) error {
		for j := t.start; j < t.end; j++ {
			row := field.Z[j]
			for i := range row {
				row[i] = model.Value(amplitude * sx[i] * sy[j])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"lengthA": p.LengthA,
		"widthB":  p.WidthB,
		"load":    p.Load,
		"steps":   p.ResolutionSteps,
		"cost":    cost,
	}).Debug("计算板挠度场")
	return field, nil
}

// SummarizePlate 返回最大挠度（绝对值最大处的带符号值）和中心点挠度
func SummarizePlate(field *model.GridField) (model.PlateSummary, error) {
	if err := field.Validate(); err != nil {
		return model.PlateSummary{}, err
	}
	if len(field.Z) == 0 || len(field.X) == 0 {
		return model.PlateSummary{}, invalid("grid points", 0, "field is empty")
	}

	var s model.PlateSummary
	best := -1.0
	for _, row := range field.Z {
		for _, c := range row {
			v, ok := c.Float()
			if ok && math.Abs(v) > best {
				best = math.Abs(v)
				s.MaxDeflection = v
			}
		}
	}
	s.CenterDeflection, _ = field.At(len(field.Y)/2, len(field.X)/2).Float()
	return s, nil
}
