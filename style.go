package chart3d

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ChartStyle 所有图表共用的样式参数
type ChartStyle struct {
	AxisThickness float64        // 坐标轴线粗细
	ArrowSize     float64        // 坐标轴箭头高度
	AxisColor     colorful.Color // 坐标轴颜色
	LabelColor    colorful.Color // 文字颜色
}

// DefaultChartStyle 返回默认公共样式
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		AxisThickness: 0.1,
		ArrowSize:     0.5,
		AxisColor:     colorful.Color{R: 0.5, G: 0.5, B: 0.5},
		LabelColor:    colorful.Color{R: 1, G: 1, B: 1},
	}
}

// BarChartStyle 柱状图样式
type BarChartStyle struct {
	ChartStyle
	NodeWidth     float64        // 柱子宽度
	NodeSpacing   float64        // 柱子间距
	ChamferRadius float64        // 柱子圆角半径
	BarColor      colorful.Color // 柱子颜色
}

// DefaultBarChartStyle 返回默认柱状图样式
func DefaultBarChartStyle() BarChartStyle {
	return BarChartStyle{
		ChartStyle:    DefaultChartStyle(),
		NodeWidth:     1,
		NodeSpacing:   1,
		ChamferRadius: 0.1,
		BarColor:      colorful.Color{R: 0.27, G: 0.51, B: 0.71},
	}
}

// LineChartStyle 折线图样式
type LineChartStyle struct {
	ChartStyle
	LineThickness float64        // 线段圆柱半径
	LineColor     colorful.Color // 线段颜色
}

// DefaultLineChartStyle 返回默认折线图样式
func DefaultLineChartStyle() LineChartStyle {
	return LineChartStyle{
		ChartStyle:    DefaultChartStyle(),
		LineThickness: 0.1,
		LineColor:     colorful.Color{R: 0.93, G: 0.42, B: 0.31},
	}
}

// PieChartStyle 饼图样式
type PieChartStyle struct {
	ChartStyle
	Radius  float64          // 饼的半径
	Palette []colorful.Color // 默认配色，按切片顺序循环取用
}

// DefaultPieChartStyle 返回默认饼图样式
func DefaultPieChartStyle() PieChartStyle {
	return PieChartStyle{
		ChartStyle: DefaultChartStyle(),
		Radius:     1,
		Palette:    DefaultPalette(8),
	}
}

// DefaultPalette 生成 n 个按色相均匀分布的颜色
func DefaultPalette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}

	var palette = make([]colorful.Color, 0, n)
	for i := 0; i < n; i++ {
		palette = append(palette, colorful.Hsv(float64(i)*360/float64(n), 0.65, 0.9))
	}

	return palette
}
