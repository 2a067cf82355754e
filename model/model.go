package model

// 计算参数
// 1. 板的挠度：简支矩形板，均布载荷，Navier 级数取第一项
// 2. 圆孔应力集中：单向拉伸，Kirsch 解的近似

// PlateParameters 简支矩形板参数
type PlateParameters struct {
	LengthA         float64 `json:"length_a"` // x 方向边长
	WidthB          float64 `json:"width_b"`  // y 方向边长
	Load            float64 `json:"load"`     // 均布载荷
	ResolutionSteps int     `json:"resolution_steps"`
}

// HoleStressParameters 带圆孔板参数
type HoleStressParameters struct {
	GridResolution    int     `json:"grid_resolution"`     // 每个方向的采样点数
	DomainExtentRatio float64 `json:"domain_extent_ratio"` // 计算域半宽 / 孔半径
	HoleRadius        float64 `json:"hole_radius"`
}

// NotchedStrengthParameters 点应力准则（Whitney-Nuismer）参数
type NotchedStrengthParameters struct {
	UnnotchedStrength      float64 `json:"unnotched_strength"`
	HoleRadius             float64 `json:"hole_radius"`
	CharacteristicDistance float64 `json:"characteristic_distance"` // d0
}

// PlateSummary 挠度场的特征值
type PlateSummary struct {
	MaxDeflection    float64 `json:"max_deflection"`
	CenterDeflection float64 `json:"center_deflection"`
}

// MicromechanicsParameters 单向纤维复合材料的组分性能
type MicromechanicsParameters struct {
	FiberModulus   float64 `json:"Ef"`
	MatrixModulus  float64 `json:"Em"`
	VolumeFraction float64 `json:"vf"` // 纤维体积分数，0..1
	Xi             float64 `json:"xi"` // Halpin-Tsai 形状参数
}

// MicromechanicsResult 单层板模量估算
type MicromechanicsResult struct {
	E1        float64 `json:"E1"`         // 混合律
	E2        float64 `json:"E2"`         // Halpin-Tsai
	E2Inverse float64 `json:"E2_inverse"` // 反混合律
}

// SNCurve 疲劳 S-N 曲线 σ = A - B·log10(N)
type SNCurve struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// 前端请求，字段为空时由调用方补全默认值

type PlateRequest struct {
	LengthA         *float64 `json:"length_a"`
	WidthB          *float64 `json:"width_b"`
	Load            *float64 `json:"load"`
	ResolutionSteps *int     `json:"resolution_steps"`
}

type HoleRequest struct {
	GridResolution    *int     `json:"grid_resolution"`
	DomainExtentRatio *float64 `json:"domain_extent_ratio"`
	HoleRadius        *float64 `json:"hole_radius"`
}

type NotchedStrengthRequest struct {
	UnnotchedStrength      *float64 `json:"unnotched_strength"`
	HoleRadius             *float64 `json:"hole_radius"`
	CharacteristicDistance *float64 `json:"characteristic_distance"`
}

// FatigueRequest 给出应力幅时预测寿命，给出循环次数时预测疲劳强度
type FatigueRequest struct {
	SNCurve
	StressAmplitude *float64 `json:"stress_amplitude"`
	Cycles          *float64 `json:"cycles"`
}

// 挠度场推送数据
type PlateResult struct {
	Field   *GridField   `json:"field"`
	Summary PlateSummary `json:"summary"`
}

type StrengthResult struct {
	PredictedStrength float64 `json:"predicted_strength"`
}

type FatigueResult struct {
	Life     *float64 `json:"life,omitempty"`     // 失效循环次数
	Strength *float64 `json:"strength,omitempty"` // N 次循环对应的疲劳强度
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	MsgPlate         = "plate"
	MsgHole          = "hole"
	MsgPSC           = "psc"
	MsgMicro         = "micro"
	MsgFatigue       = "fatigue"
	MsgPlateResult   = "plateResult"
	MsgHoleResult    = "holeResult"
	MsgPSCResult     = "pscResult"
	MsgMicroResult   = "microResult"
	MsgFatigueResult = "fatigueResult"
	MsgError         = "error"
)
