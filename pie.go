package chart3d

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

// 标签锚点相对饼半径的放大比例
const pieLabelRadiusRatio = 1.2

// PieSlice 代表饼图的一块
type PieSlice struct {
	Label  string         // 可选标签，空串表示没有
	Value  float64        // 份额，约定 >= 0
	Height float64        // 可选挤出厚度，<= 0 视为未设置（默认 1）
	Color  colorful.Color // 显示颜色，零值时构建阶段从调色板补齐
}

// PieData 饼图数据，派生字段在构建时一次算好，之后不可变
type PieData struct {
	Slices []PieSlice
	Style  PieChartStyle

	TotalValue  float64   // 所有切片份额之和
	Angles      []float64 // 累计边界角，长度 = 切片数 + 1，从 0 单调递增到 2π
	TotalHeight float64   // 最大切片厚度（全部未设置时为 0）
}

// NewPieData 从切片序列构建饼图数据，序列为空时返回 ErrNoData
//
// 份额总和为零时按等分角处理，保证 Angles 仍然从 0 递增到 2π。
func NewPieData(slices []PieSlice, style PieChartStyle) (data *PieData, err error) {
	if len(slices) == 0 {
		return nil, ErrNoData
	}

	// 构建阶段就把颜色定下来，布局阶段不再做任何决策
	slices = assignColors(slices, style.Palette)

	var (
		total     float64
		maxHeight float64
	)

	for _, s := range slices {
		total += s.Value
		if s.Height > maxHeight {
			maxHeight = s.Height
		}
	}

	var angles = make([]float64, 0, len(slices)+1)
	angles = append(angles, 0)

	for i, s := range slices {
		if total == 0 {
			angles = append(angles, 2*math.Pi*float64(i+1)/float64(len(slices)))
			continue
		}
		angles = append(angles, angles[i]+2*math.Pi*s.Value/total)
	}

	return &PieData{
		Slices:      slices,
		Style:       style,
		TotalValue:  total,
		Angles:      angles,
		TotalHeight: maxHeight,
	}, nil
}

// assignColors 给没有指定颜色的切片按顺序循环分配调色板颜色
func assignColors(slices []PieSlice, palette []colorful.Color) []PieSlice {
	if len(palette) == 0 {
		palette = DefaultPalette(len(slices))
	}

	var assigned = make([]PieSlice, len(slices))
	for i, s := range slices {
		if s.Color == (colorful.Color{}) {
			s.Color = palette[i%len(palette)]
		}
		assigned[i] = s
	}

	return assigned
}

// Count 返回切片数量
func (d *PieData) Count() int {
	return len(d.Slices)
}

// PieChart 饼图编排器
type PieChart struct {
	Data *PieData
	core.Rotation
}

// NewPieChart 从切片序列构建饼图，序列为空时返回 ErrNoData
func NewPieChart(slices []PieSlice, style PieChartStyle) (chart *PieChart, err error) {
	data, err := NewPieData(slices, style)
	if err != nil {
		return
	}

	return &PieChart{Data: data}, nil
}

// SetStyle 更换样式并重新派生数据，已累计的朝向保持不变
func (c *PieChart) SetStyle(style PieChartStyle) (err error) {
	data, err := NewPieData(c.Data.Slices, style)
	if err != nil {
		return
	}

	c.Data = data
	return
}

// Layout 生成全部图元，相同输入重复调用结果一致
//
// 饼图没有坐标轴。标签锚在切片角平分线方向、1.2 倍半径处的底平面上，
// 与切片自身的挤出厚度无关。
func (c *PieChart) Layout() *Layout {
	var (
		data   = c.Data
		style  = data.Style
		layout = Layout{Orientation: c.Rotation}
	)

	for i, s := range data.Slices {
		// 厚度未设置时默认为 1
		var height = s.Height
		if height <= 0 {
			height = 1
		}

		layout.Primitives = append(layout.Primitives,
			entities.NewSector(core.Vector{}, style.Radius, data.Angles[i], data.Angles[i+1], height, s.Color),
		)

		if s.Label == "" {
			continue
		}

		var (
			mid    = (data.Angles[i] + data.Angles[i+1]) / 2
			radius = style.Radius * pieLabelRadiusRatio
			anchor = core.Vector{X: radius * math.Cos(mid), Y: radius * math.Sin(mid)}
		)

		layout.Labels = append(layout.Labels, entities.NewTextLabel(anchor, s.Label, style.LabelColor))
	}

	return &layout
}
