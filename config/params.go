package config

import (
	"orthos/calculator"
	"orthos/model"
)

// CalculatorOptions 计算器的 worker 数量和格点上限
func (c Config) CalculatorOptions() calculator.Options {
	return calculator.Options{Workers: c.Workers, MaxGridPoints: c.MaxGridPoints}
}

// PlateParameters 补全请求中缺失的字段，载荷缺失时使用默认载荷
func (c Config) PlateParameters(req model.PlateRequest) model.PlateParameters {
	p := model.PlateParameters{
		LengthA:         c.PlateLengthA,
		WidthB:          c.PlateWidthB,
		Load:            c.DefaultLoad,
		ResolutionSteps: c.PlateSteps,
	}
	if req.LengthA != nil {
		p.LengthA = *req.LengthA
	}
	if req.WidthB != nil {
		p.WidthB = *req.WidthB
	}
	if req.Load != nil {
		p.Load = *req.Load
	}
	if req.ResolutionSteps != nil {
		p.ResolutionSteps = *req.ResolutionSteps
	}
	return p
}

func (c Config) HoleParameters(req model.HoleRequest) model.HoleStressParameters {
	p := model.HoleStressParameters{
		GridResolution:    c.HoleGridResolution,
		DomainExtentRatio: c.HoleExtentRatio,
		HoleRadius:        c.HoleRadius,
	}
	if req.GridResolution != nil {
		p.GridResolution = *req.GridResolution
	}
	if req.DomainExtentRatio != nil {
		p.DomainExtentRatio = *req.DomainExtentRatio
	}
	if req.HoleRadius != nil {
		p.HoleRadius = *req.HoleRadius
	}
	return p
}

func (c Config) NotchedStrengthParameters(req model.NotchedStrengthRequest) model.NotchedStrengthParameters {
	p := model.NotchedStrengthParameters{
		UnnotchedStrength:      c.PSCUnnotchedStrength,
		HoleRadius:             c.PSCHoleRadius,
		CharacteristicDistance: c.PSCCharacteristicDistance,
	}
	if req.UnnotchedStrength != nil {
		p.UnnotchedStrength = *req.UnnotchedStrength
	}
	if req.HoleRadius != nil {
		p.HoleRadius = *req.HoleRadius
	}
	if req.CharacteristicDistance != nil {
		p.CharacteristicDistance = *req.CharacteristicDistance
	}
	return p
}
