package entities

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zooyer/chart3d/core"
)

// Sector 代表扇形柱图元（饼图的一块）
//
// 扇形位于 XY 平面内，从 StartAngle 逆时针扫到 EndAngle（弧度），
// 沿 -Z 方向挤出 Height 的厚度，底面 z=0 朝向观察者。
type Sector struct {
	BasePrimitive
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Height     float64
}

// NewSector 以圆心创建扇形柱
func NewSector(center core.Vector, radius, start, end, height float64, paint colorful.Color) *Sector {
	return &Sector{
		BasePrimitive: BasePrimitive{TypeName: "SECTOR", Center: center, Paint: paint},
		Radius:        radius,
		StartAngle:    start,
		EndAngle:      end,
		Height:        height,
	}
}

func (s *Sector) BBox() core.BBox {
	// 简化处理：不按角度精算，直接取整圆的包围盒
	return core.BBox{
		Min: core.Vector{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius, Z: s.Center.Z - s.Height},
		Max: core.Vector{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius, Z: s.Center.Z},
	}
}
