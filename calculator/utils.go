package calculator

import "math"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requireFinite(name string, v float64) error {
	if !isFinite(v) {
		return invalid(name, v, "must be finite")
	}
	return nil
}

func requirePositive(name string, v float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalid(name, v, "must be > 0")
	}
	return nil
}

// gridFits 判断 perAxis x perAxis 个格点是否不超过 maxPoints，perAxis >= 1
func gridFits(perAxis, maxPoints int) bool {
	return perAxis <= maxPoints/perAxis
}

// linSpace 在 [start, end] 上均匀取 n 个点，两端点精确等于 start 和 end
func linSpace(start, end float64, n int) []float64 {
	res := make([]float64, n)
	res[0] = start
	if n == 1 {
		return res
	}
	last := float64(n - 1)
	for i := 1; i < n-1; i++ {
		res[i] = start + float64(i)*(end-start)/last
	}
	res[n-1] = end
	return res
}

// symmetricSpace 在 [-half, half] 上均匀取 n 个点，结果关于 0 严格对称
func symmetricSpace(half float64, n int) []float64 {
	res := make([]float64, n)
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		res[i] = float64(2*i-(n-1)) * half / last
	}
	res[0], res[n-1] = -half, half
	return res
}
