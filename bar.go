package chart3d

import (
	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

// BarNode 代表柱状图的一根柱子
type BarNode struct {
	Label string  // 可选标签，空串表示没有
	Value float64 // 柱子高度，约定 >= 0（不强制校验）
	Depth float64 // 柱子深度，以 NodeWidth 为单位，<= 0 视为未设置
}

// BarData 柱状图数据，派生字段在构建时一次算好，之后不可变
//
// 更换样式需要重新构建（派生跨度依赖柱宽与间距）。
type BarData struct {
	Nodes []BarNode
	Style BarChartStyle

	TotalWidth  float64 // X 方向总跨度
	TotalHeight float64 // 最大柱高
	TotalLength float64 // 最大柱深（未设置深度时为 0）
	XOffset     float64 // 第一根柱子中心的 X 坐标
	YOffset     float64 // 柱子底面的 Y 坐标
}

// NewBarData 从数值序列构建柱状图数据，序列为空时返回 ErrNoData
func NewBarData(nodes []BarNode, style BarChartStyle) (data *BarData, err error) {
	if len(nodes) == 0 {
		return nil, ErrNoData
	}

	var (
		count    = float64(len(nodes))
		maxValue = nodes[0].Value
		maxDepth float64
	)

	for _, node := range nodes {
		if node.Value > maxValue {
			maxValue = node.Value
		}
		if node.Depth > maxDepth {
			maxDepth = node.Depth
		}
	}

	var totalWidth = count*style.NodeWidth + (count-1)*style.NodeSpacing

	return &BarData{
		Nodes:       nodes,
		Style:       style,
		TotalWidth:  totalWidth,
		TotalHeight: maxValue,
		TotalLength: maxDepth * style.NodeWidth,
		XOffset:     -totalWidth/2 + style.NodeWidth/2,
		YOffset:     -maxValue / 2,
	}, nil
}

// Count 返回柱子数量
func (d *BarData) Count() int {
	return len(d.Nodes)
}

// Extents 返回图表跨度
func (d *BarData) Extents() Extents {
	return Extents{Width: d.TotalWidth, Height: d.TotalHeight, Length: d.TotalLength}
}

// BarChart 柱状图编排器
type BarChart struct {
	Data *BarData
	core.Rotation
}

// NewBarChart 从数值序列构建柱状图，序列为空时返回 ErrNoData
func NewBarChart(nodes []BarNode, style BarChartStyle) (chart *BarChart, err error) {
	data, err := NewBarData(nodes, style)
	if err != nil {
		return
	}

	return &BarChart{Data: data}, nil
}

// SetStyle 更换样式并重新派生数据，已累计的朝向保持不变
func (c *BarChart) SetStyle(style BarChartStyle) (err error) {
	data, err := NewBarData(c.Data.Nodes, style)
	if err != nil {
		return
	}

	c.Data = data
	return
}

// Layout 生成全部图元，相同输入重复调用结果一致
func (c *BarChart) Layout() *Layout {
	var (
		data   = c.Data
		style  = data.Style
		layout = Layout{Orientation: c.Rotation}
	)

	for i, node := range data.Nodes {
		// 深度未设置时默认为一个柱宽，柱子近似立方
		var length = node.Depth * style.NodeWidth
		if node.Depth <= 0 {
			length = style.NodeWidth
		}

		var center = core.Vector{
			X: data.XOffset + float64(i)*(style.NodeWidth+style.NodeSpacing),
			Y: data.YOffset + node.Value/2,
			Z: -length / 2,
		}

		layout.Primitives = append(layout.Primitives,
			entities.NewBox(center, style.NodeWidth, node.Value, length, style.ChamferRadius, style.BarColor),
		)

		if node.Label != "" {
			var anchor = core.Vector{X: center.X, Y: data.YOffset + node.Value + 1}
			layout.Labels = append(layout.Labels, entities.NewTextLabel(anchor, node.Label, style.LabelColor))
		}
	}

	prims, labels := buildAxes(data.Extents(), style.ChartStyle)
	layout.Primitives = append(layout.Primitives, prims...)
	layout.Labels = append(layout.Labels, labels...)

	return &layout
}
