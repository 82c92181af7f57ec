package entities

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/chart3d/core"
)

// Cone 代表圆锥图元（坐标轴箭头）
//
// LookAt 是圆锥尖端朝向的目标点，渲染器据此确定朝向。
type Cone struct {
	BasePrimitive
	BottomRadius float64
	Height       float64
	LookAt       core.Vector
}

// NewCone 在指定位置创建圆锥，尖端朝向 lookAt
func NewCone(position, lookAt core.Vector, bottomRadius, height float64, paint colorful.Color) *Cone {
	return &Cone{
		BasePrimitive: BasePrimitive{TypeName: "CONE", Center: position, Paint: paint},
		BottomRadius:  bottomRadius,
		Height:        height,
		LookAt:        lookAt,
	}
}

func (c *Cone) BBox() core.BBox {
	// 简化处理：以位置为中心，按较大的尺寸取立方包围盒
	var r = math.Max(c.BottomRadius, c.Height/2)

	return core.BBox{
		Min: r3.Sub(c.Center, core.Vector{X: r, Y: r, Z: r}),
		Max: r3.Add(c.Center, core.Vector{X: r, Y: r, Z: r}),
	}
}
