package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// GridAxis 单调递增的坐标序列
type GridAxis []float64

// Cell is a grid value or the marker for a point outside the physical domain
// (for example inside a hole). Excluded cells encode as JSON null so a renderer
// draws them as "no data" instead of zero.
type Cell struct {
	value   float64
	defined bool
}

func Value(v float64) Cell {
	return Cell{value: v, defined: true}
}

func Excluded() Cell {
	return Cell{}
}

// Float returns the value and whether the cell lies inside the domain.
func (c Cell) Float() (float64, bool) {
	return c.value, c.defined
}

func (c Cell) IsExcluded() bool {
	return !c.defined
}

var null = []byte("null")

func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.defined {
		return null, nil
	}
	return json.Marshal(c.value)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		*c = Excluded()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Value(v)
	return nil
}

// GridField 二维标量场，Z[row][col] 先按 y 再按 x 索引
type GridField struct {
	X GridAxis `json:"x"`
	Y GridAxis `json:"y"`
	Z [][]Cell `json:"z"`
}

// NewGridField 预分配 Z，所有格点初始为 Excluded
func NewGridField(x, y GridAxis) *GridField {
	z := make([][]Cell, len(y))
	cells := make([]Cell, len(y)*len(x))
	for row := range z {
		z[row] = cells[row*len(x) : (row+1)*len(x) : (row+1)*len(x)]
	}
	return &GridField{X: x, Y: y, Z: z}
}

func (g *GridField) At(row, col int) Cell {
	return g.Z[row][col]
}

// Validate checks the shape invariant and that both axes strictly increase.
func (g *GridField) Validate() error {
	if len(g.Z) != len(g.Y) {
		return fmt.Errorf("grid has %d rows, y axis has %d points", len(g.Z), len(g.Y))
	}
	for row := range g.Z {
		if len(g.Z[row]) != len(g.X) {
			return fmt.Errorf("row %d has %d columns, x axis has %d points", row, len(g.Z[row]), len(g.X))
		}
	}
	if err := g.X.Validate(); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := g.Y.Validate(); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// Validate 检查坐标严格递增
func (a GridAxis) Validate() error {
	for i := 1; i < len(a); i++ {
		if !(a[i] > a[i-1]) {
			return fmt.Errorf("not strictly increasing at index %d (%g after %g)", i, a[i], a[i-1])
		}
	}
	return nil
}

// Range 返回所有有效格点的最小值和最大值，没有有效格点时 ok 为 false
func (g *GridField) Range() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range g.Z {
		for _, c := range row {
			v, defined := c.Float()
			if !defined {
				continue
			}
			ok = true
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
