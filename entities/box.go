package entities

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zooyer/chart3d/core"
)

// Box 代表长方体图元（柱状图的柱体）
type Box struct {
	BasePrimitive
	Width, Height, Length float64
	ChamferRadius         float64 // 圆角半径
}

// NewBox 以中心点创建长方体
func NewBox(center core.Vector, width, height, length, chamfer float64, paint colorful.Color) *Box {
	return &Box{
		BasePrimitive: BasePrimitive{TypeName: "BOX", Center: center, Paint: paint},
		Width:         width,
		Height:        height,
		Length:        length,
		ChamferRadius: chamfer,
	}
}

func (b *Box) BBox() core.BBox {
	half := core.Vector{X: b.Width / 2, Y: b.Height / 2, Z: b.Length / 2}
	return core.BBox{
		Min: core.Vector{X: b.Center.X - half.X, Y: b.Center.Y - half.Y, Z: b.Center.Z - half.Z},
		Max: core.Vector{X: b.Center.X + half.X, Y: b.Center.Y + half.Y, Z: b.Center.Z + half.Z},
	}
}
