package calculator

import "orthos/model"

// calculator 的接口定义

type Calculator interface {
	// 计算标量场
	Calculate() (*model.GridField, error)
}

var (
	_ Calculator = (*PlateCalculator)(nil)
	_ Calculator = (*HoleCalculator)(nil)
)

// DefaultWorkers 包级函数使用的 worker 数量
const DefaultWorkers = 4

// DefaultMaxGridPoints 单个场允许的最大格点数 (2048 x 2048)
const DefaultMaxGridPoints = 1 << 22

// Options 计算器的运行参数
type Options struct {
	Workers       int
	MaxGridPoints int // <= 0 时使用 DefaultMaxGridPoints
}

func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers, MaxGridPoints: DefaultMaxGridPoints}
}

func (o Options) maxGridPoints() int {
	if o.MaxGridPoints <= 0 {
		return DefaultMaxGridPoints
	}
	return o.MaxGridPoints
}

// PlateDeflectionField computes the single-mode Navier deflection of a simply
// supported rectangular plate under uniform load.
func PlateDeflectionField(p model.PlateParameters) (*model.GridField, error) {
	return NewPlateCalculator(p, DefaultOptions()).Calculate()
}

// HoleStressField computes the stress concentration factor around a circular
// hole in a plate under unit uniaxial tension along x.
func HoleStressField(p model.HoleStressParameters) (*model.GridField, error) {
	return NewHoleCalculator(p, DefaultOptions()).Calculate()
}
