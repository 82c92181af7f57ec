package core

import "math"

// Euler 代表按分量累加的欧拉角（弧度制）
//
// 注意：Rotate 只在指定轴的分量上做加法，不做矩阵/四元数合成，
// 多次不同轴的旋转各自独立累加，角度超过 2π 也不归一化。
type Euler struct {
	X, Y, Z float64
}

// Rotate 在指定轴上累加一个带符号的角度（弧度）
func (e *Euler) Rotate(angle float64, axis Axis) {
	switch axis {
	case AxisX:
		e.X += angle
	case AxisY:
		e.Y += angle
	case AxisZ:
		e.Z += angle
	}
}

// RotateDegrees 角度制入口，换算成弧度后委托给 Rotate
func (e *Euler) RotateDegrees(degrees float64, axis Axis) {
	e.Rotate(degrees*math.Pi/180, axis)
}

// Rotation 代表一个图表实例的朝向状态
//
// 图表主体和标签组各持有一个独立的累加器，标签可以单独旋转
// （例如主体旋转后把文字转回正对相机）。
type Rotation struct {
	Chart  Euler // 图表主体朝向
	Labels Euler // 标签组朝向
}

// Rotate 旋转图表主体
func (r *Rotation) Rotate(angle float64, axis Axis) {
	r.Chart.Rotate(angle, axis)
}

// RotateDegrees 角度制旋转图表主体
func (r *Rotation) RotateDegrees(degrees float64, axis Axis) {
	r.Chart.RotateDegrees(degrees, axis)
}

// RotateLabels 旋转标签组
func (r *Rotation) RotateLabels(angle float64, axis Axis) {
	r.Labels.Rotate(angle, axis)
}

// RotateLabelsDegrees 角度制旋转标签组
func (r *Rotation) RotateLabelsDegrees(degrees float64, axis Axis) {
	r.Labels.RotateDegrees(degrees, axis)
}
