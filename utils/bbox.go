package utils

import (
	"math"

	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

// Union 合并多个包围盒，没有输入时返回零值
func Union(boxes ...core.BBox) core.BBox {
	if len(boxes) == 0 {
		return core.BBox{}
	}

	var merged = boxes[0]
	for _, box := range boxes[1:] {
		merged = merged.Extend(box.Min).Extend(box.Max)
	}

	return merged
}

// GroupBBox 计算一组图元的整体包围盒，渲染器可据此摆放相机
func GroupBBox(prims []entities.Primitive) core.BBox {
	if len(prims) == 0 {
		return core.BBox{}
	}

	var box = core.BBox{
		Min: core.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: core.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}

	for _, prim := range prims {
		var b = prim.BBox()
		box = box.Extend(b.Min).Extend(b.Max)
	}

	return box
}

// InBox 判断点是否落在包围盒内（含边界）
func InBox(box core.BBox, point core.Vector) bool {
	if point.X >= box.Min.X && point.X <= box.Max.X &&
		point.Y >= box.Min.Y && point.Y <= box.Max.Y &&
		point.Z >= box.Min.Z && point.Z <= box.Max.Z {
		return true
	}

	return false
}
