package core

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector 代表三维空间中的一个向量（点），底层复用 gonum 的 r3.Vec
type Vector = r3.Vec

// Axis 代表坐标轴（X/Y/Z 三选一）
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String 返回坐标轴名称
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return ""
}

// Unit 返回坐标轴的单位向量
func (a Axis) Unit() Vector {
	switch a {
	case AxisX:
		return Vector{X: 1}
	case AxisY:
		return Vector{Y: 1}
	case AxisZ:
		return Vector{Z: 1}
	}
	return Vector{}
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Vector
}

// Extend 将包围盒扩展到包含指定点
func (b BBox) Extend(p Vector) BBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}
