package utils

import (
	"math"

	"github.com/zooyer/chart3d/core"
)

// RotatePoint 将点按欧拉角旋转到世界坐标，依次绕 X、Y、Z 轴
func RotatePoint(p core.Vector, e core.Euler) core.Vector {
	cosX, sinX := math.Cos(e.X), math.Sin(e.X)
	cosY, sinY := math.Cos(e.Y), math.Sin(e.Y)
	cosZ, sinZ := math.Cos(e.Z), math.Sin(e.Z)

	// 绕 X 轴
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y1, z1

	// 绕 Y 轴
	x1 := p.X*cosY + p.Z*sinY
	z2 := -p.X*sinY + p.Z*cosY
	p.X, p.Z = x1, z2

	// 绕 Z 轴
	x2 := p.X*cosZ - p.Y*sinZ
	y2 := p.X*sinZ + p.Y*cosZ
	p.X, p.Y = x2, y2

	return p
}

// RotateBBox 将包围盒的 8 个角点旋转后重新求轴对齐包围盒
func RotateBBox(local core.BBox, e core.Euler) core.BBox {
	corners := []core.Vector{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	var box = core.BBox{
		Min: core.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: core.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}

	for _, p := range corners {
		box = box.Extend(RotatePoint(p, e))
	}

	return box
}
