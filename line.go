package chart3d

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

// LinePoint 代表折线图的一个数据点，Z 不填默认为 0
type LinePoint struct {
	X, Y, Z float64
	Label   string // 可选标签，空串表示没有
}

// LineData 折线图数据，派生字段在构建时一次算好，之后不可变
type LineData struct {
	Points []LinePoint
	Style  LineChartStyle

	TotalWidth  float64 // X 方向跨度
	TotalHeight float64 // Y 方向跨度
	TotalLength float64 // Z 方向跨度
	XOffset     float64 // X 方向居中偏移（中点）
	YOffset     float64 // Y 方向居中偏移（中点）
	ZOffset     float64 // Z 方向对齐偏移（最小值，不居中）
}

// NewLineData 从点序列构建折线图数据，序列为空时返回 ErrNoData
func NewLineData(points []LinePoint, style LineChartStyle) (data *LineData, err error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	var (
		minX, maxX = points[0].X, points[0].X
		minY, maxY = points[0].Y, points[0].Y
		minZ, maxZ = points[0].Z, points[0].Z
	)

	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	return &LineData{
		Points:      points,
		Style:       style,
		TotalWidth:  maxX - minX,
		TotalHeight: maxY - minY,
		TotalLength: maxZ - minZ,
		XOffset:     (minX + maxX) / 2,
		YOffset:     (minY + maxY) / 2,
		ZOffset:     minZ,
	}, nil
}

// Count 返回数据点数量
func (d *LineData) Count() int {
	return len(d.Points)
}

// Extents 返回图表跨度
func (d *LineData) Extents() Extents {
	return Extents{Width: d.TotalWidth, Height: d.TotalHeight, Length: d.TotalLength}
}

// Placed 返回数据点去掉偏移后的摆放位置
//
// 深度轴朝向观察者，所以 Z 要翻转符号。
func (d *LineData) Placed(p LinePoint) core.Vector {
	return core.Vector{
		X: p.X - d.XOffset,
		Y: p.Y - d.YOffset,
		Z: -(p.Z - d.ZOffset),
	}
}

// LineChart 折线图编排器
type LineChart struct {
	Data *LineData
	core.Rotation
}

// NewLineChart 从点序列构建折线图，序列为空时返回 ErrNoData
func NewLineChart(points []LinePoint, style LineChartStyle) (chart *LineChart, err error) {
	data, err := NewLineData(points, style)
	if err != nil {
		return
	}

	return &LineChart{Data: data}, nil
}

// SetStyle 更换样式并重新派生数据，已累计的朝向保持不变
func (c *LineChart) SetStyle(style LineChartStyle) (err error) {
	data, err := NewLineData(c.Data.Points, style)
	if err != nil {
		return
	}

	c.Data = data
	return
}

// Layout 生成全部图元，相同输入重复调用结果一致
func (c *LineChart) Layout() *Layout {
	var (
		data   = c.Data
		style  = data.Style
		layout = Layout{Orientation: c.Rotation}
	)

	for i := 1; i < len(data.Points); i++ {
		var (
			start = data.Placed(data.Points[i-1])
			end   = data.Placed(data.Points[i])
		)

		// 相邻点重合时线段长度为零、方向无定义，直接跳过
		if r3.Norm(r3.Sub(end, start)) == 0 {
			continue
		}

		layout.Primitives = append(layout.Primitives,
			entities.NewCylinder(start, end, style.LineThickness, style.LineColor),
		)
	}

	for _, p := range data.Points {
		if p.Label == "" {
			continue
		}

		// 标签锚点在数据点上方一个单位
		var anchor = r3.Add(data.Placed(p), core.Vector{Y: 1})
		layout.Labels = append(layout.Labels, entities.NewTextLabel(anchor, p.Label, style.LabelColor))
	}

	prims, labels := buildAxes(data.Extents(), style.ChartStyle)
	layout.Primitives = append(layout.Primitives, prims...)
	layout.Labels = append(layout.Labels, labels...)

	return &layout
}
