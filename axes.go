package chart3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

const (
	widthOverhangRatio  = 0.2 // X/Y 轴超出图表跨度的比例
	lengthOverhangRatio = 0.3 // Z 轴超出图表深度的比例
)

// buildAxes 根据图表跨度生成坐标轴图元（轴线 + 箭头 + 轴名）
//
// 原点固定在图表角点 (-width/2, -height/2, 0)，Z 轴只在深度大于 0 时生成。
func buildAxes(ext Extents, style ChartStyle) (prims, labels []entities.Primitive) {
	var (
		origin   = core.Vector{X: -ext.Width / 2, Y: -ext.Height / 2}
		overhang = ext.Width * widthOverhangRatio
	)

	prims, labels = appendAxis(prims, labels, style, origin,
		core.Vector{X: ext.Width/2 + overhang, Y: -ext.Height / 2},
		"X", core.Vector{Y: -1},
	)

	prims, labels = appendAxis(prims, labels, style, origin,
		core.Vector{X: -ext.Width / 2, Y: ext.Height/2 + overhang},
		"Y", core.Vector{X: -1},
	)

	if ext.Length > 0 {
		prims, labels = appendAxis(prims, labels, style, origin,
			core.Vector{X: -ext.Width / 2, Y: -ext.Height / 2, Z: -(ext.Length + ext.Length*lengthOverhangRatio)},
			"Z", core.Vector{X: -1},
		)
	}

	return
}

// appendAxis 生成一条坐标轴：轴线圆柱、末端箭头、轴名文字
//
// 跨度为零时两端点重合、方向无定义，整条轴跳过。
func appendAxis(prims, labels []entities.Primitive, style ChartStyle, start, end core.Vector, name string, labelOffset core.Vector) ([]entities.Primitive, []entities.Primitive) {
	if start == end {
		return prims, labels
	}

	prims = append(prims,
		entities.NewCylinder(start, end, style.AxisThickness/2, style.AxisColor),
		entities.NewCone(end, arrowTarget(end), style.AxisThickness*2, style.ArrowSize, style.AxisColor),
	)

	labels = append(labels, entities.NewTextLabel(r3.Add(end, labelOffset), name, style.LabelColor))

	return prims, labels
}

// arrowTarget 返回箭头指向的目标点：沿端点绝对值最大的坐标分量再前进一个单位
//
// 这是一个启发式：每条轴的末端恰好由一个坐标分量主导，所以取主导分量
// 延长即是轴的方向，不是通用的方向向量计算。
func arrowTarget(end core.Vector) core.Vector {
	var (
		ax = math.Abs(end.X)
		ay = math.Abs(end.Y)
		az = math.Abs(end.Z)
	)

	switch {
	case ax >= ay && ax >= az:
		end.X += math.Copysign(1, end.X)
	case ay >= ax && ay >= az:
		end.Y += math.Copysign(1, end.Y)
	default:
		end.Z += math.Copysign(1, end.Z)
	}

	return end
}
