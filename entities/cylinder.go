package entities

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/chart3d/core"
)

// Cylinder 代表圆柱图元（折线段、坐标轴线）
//
// Position 是线段中点，Direction 是起点指向终点的单位向量，
// Height 是线段长度。
type Cylinder struct {
	BasePrimitive
	Radius    float64
	Height    float64
	Direction core.Vector
}

// NewCylinder 以两个端点创建圆柱，调用方需保证两点不重合
func NewCylinder(start, end core.Vector, radius float64, paint colorful.Color) *Cylinder {
	var diff = r3.Sub(end, start)

	return &Cylinder{
		BasePrimitive: BasePrimitive{
			TypeName: "CYLINDER",
			Center:   r3.Scale(0.5, r3.Add(start, end)),
			Paint:    paint,
		},
		Radius:    radius,
		Height:    r3.Norm(diff),
		Direction: r3.Unit(diff),
	}
}

// Start 返回线段起点
func (c *Cylinder) Start() core.Vector {
	return r3.Sub(c.Center, r3.Scale(c.Height/2, c.Direction))
}

// End 返回线段终点
func (c *Cylinder) End() core.Vector {
	return r3.Add(c.Center, r3.Scale(c.Height/2, c.Direction))
}

func (c *Cylinder) BBox() core.BBox {
	// 简化处理：取两端点的包围盒，再向外扩一个半径
	var (
		start = c.Start()
		end   = c.End()
	)

	box := core.BBox{Min: start, Max: start}.Extend(end)
	box.Min = r3.Sub(box.Min, core.Vector{X: c.Radius, Y: c.Radius, Z: c.Radius})
	box.Max = r3.Add(box.Max, core.Vector{X: c.Radius, Y: c.Radius, Z: c.Radius})
	return box
}
