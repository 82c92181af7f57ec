package chart3d

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/chart3d/entities"
)

const epsilon = 1e-6

func TestNewBarData_Empty(t *testing.T) {
	if _, err := NewBarData(nil, DefaultBarChartStyle()); !errors.Is(err, ErrNoData) {
		t.Fatalf("空序列应返回 ErrNoData, 得到 %v", err)
	}
}

func TestNewBarData_Derived(t *testing.T) {
	nodes := []BarNode{{Value: 1}, {Value: 3}, {Value: 5}, {Value: 8}}

	data, err := NewBarData(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	// nodeWidth=1, nodeSpacing=1: 宽度 4*1+3*1=7
	if !xmath.Equal(data.TotalWidth, 7, epsilon) {
		t.Errorf("总宽度不符: 期望 7, 得到 %v", data.TotalWidth)
	}
	if !xmath.Equal(data.TotalHeight, 8, epsilon) {
		t.Errorf("总高度不符: 期望 8, 得到 %v", data.TotalHeight)
	}
	if !xmath.Equal(data.XOffset, -3, epsilon) {
		t.Errorf("X 偏移不符: 期望 -3, 得到 %v", data.XOffset)
	}
	if !xmath.Equal(data.YOffset, -4, epsilon) {
		t.Errorf("Y 偏移不符: 期望 -4, 得到 %v", data.YOffset)
	}
	if data.TotalLength != 0 {
		t.Errorf("未设置深度时总深度应为 0, 得到 %v", data.TotalLength)
	}
	if data.Count() != 4 {
		t.Errorf("柱子数量不符: %d", data.Count())
	}
}

func TestNewBarData_Deterministic(t *testing.T) {
	nodes := []BarNode{{Value: 1.3}, {Value: 2.7, Depth: 1.5}, {Value: 0.4}}

	first, err := NewBarData(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	second, err := NewBarData(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	// 相同输入两次构建，派生字段完全一致
	if !reflect.DeepEqual(first, second) {
		t.Errorf("两次构建结果不一致: %+v != %+v", first, second)
	}
}

func TestNewBarData_WidthFormula(t *testing.T) {
	var style = DefaultBarChartStyle()
	style.NodeWidth, style.NodeSpacing = 2, 0.5

	for count := 1; count <= 5; count++ {
		var nodes = make([]BarNode, count)

		data, err := NewBarData(nodes, style)
		if err != nil {
			t.Fatalf("构建失败: %v", err)
		}

		var want = float64(count)*style.NodeWidth + float64(count-1)*style.NodeSpacing
		if !xmath.Equal(data.TotalWidth, want, epsilon) {
			t.Errorf("%d 根柱子总宽度不符: 期望 %v, 得到 %v", count, want, data.TotalWidth)
		}

		// 第一根柱子中心在左边缘加半个柱宽
		if !xmath.Equal(data.XOffset, -want/2+style.NodeWidth/2, epsilon) {
			t.Errorf("%d 根柱子 X 偏移不符: 得到 %v", count, data.XOffset)
		}
	}
}

func TestNewBarData_Depth(t *testing.T) {
	nodes := []BarNode{{Value: 1, Depth: 2}, {Value: 2}}

	data, err := NewBarData(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	// 总深度 = 最大深度 * 柱宽
	if !xmath.Equal(data.TotalLength, 2, epsilon) {
		t.Errorf("总深度不符: 期望 2, 得到 %v", data.TotalLength)
	}
}

func TestBarChart_Layout(t *testing.T) {
	nodes := []BarNode{{Value: 1}, {Value: 3}, {Value: 5}, {Label: "最大", Value: 8}}

	chart, err := NewBarChart(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	var layout = chart.Layout()

	// 4 根柱子 + X/Y 两条轴各(轴线+箭头)
	if len(layout.Primitives) != 8 {
		t.Fatalf("主体图元数量不符: 期望 8, 得到 %d", len(layout.Primitives))
	}
	// 1 个柱子标签 + 2 个轴名
	if len(layout.Labels) != 3 {
		t.Fatalf("标签数量不符: 期望 3, 得到 %d", len(layout.Labels))
	}

	// 第 2 根柱子(值 5): 中心 x = -3 + 2*2 = 1
	box, ok := layout.Primitives[2].(*entities.Box)
	if !ok {
		t.Fatalf("图元类型不符: %s", layout.Primitives[2].Type())
	}

	var center = box.Position()
	if !xmath.Equal(center.X, 1, epsilon) {
		t.Errorf("柱子中心 X 不符: 期望 1, 得到 %v", center.X)
	}
	if !xmath.Equal(center.Y, -4+5.0/2, epsilon) {
		t.Errorf("柱子中心 Y 不符: 期望 -1.5, 得到 %v", center.Y)
	}
	// 深度未设置，默认一个柱宽
	if !xmath.Equal(center.Z, -0.5, epsilon) {
		t.Errorf("柱子中心 Z 不符: 期望 -0.5, 得到 %v", center.Z)
	}
	if !xmath.Equal(box.Height, 5, epsilon) || !xmath.Equal(box.Width, 1, epsilon) || !xmath.Equal(box.Length, 1, epsilon) {
		t.Errorf("柱子尺寸不符: %v x %v x %v", box.Width, box.Height, box.Length)
	}

	// 标签在柱顶上方一个单位
	label, ok := layout.Labels[0].(*entities.TextLabel)
	if !ok || label.Text != "最大" {
		t.Fatalf("标签不符: %+v", layout.Labels[0])
	}
	if anchor := label.Position(); !xmath.Equal(anchor.X, 3, epsilon) || !xmath.Equal(anchor.Y, 5, epsilon) {
		t.Errorf("标签锚点不符: %+v", anchor)
	}
}

func TestBarChart_SetStyle(t *testing.T) {
	nodes := []BarNode{{Value: 1}, {Value: 3}, {Value: 5}, {Value: 8}}

	chart, err := NewBarChart(nodes, DefaultBarChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	var style = DefaultBarChartStyle()
	style.NodeSpacing = 2

	if err = chart.SetStyle(style); err != nil {
		t.Fatalf("更换样式失败: %v", err)
	}

	// 宽度 4*1+3*2=10
	if !xmath.Equal(chart.Data.TotalWidth, 10, epsilon) {
		t.Errorf("重新派生后总宽度不符: 期望 10, 得到 %v", chart.Data.TotalWidth)
	}
	if !xmath.Equal(chart.Data.XOffset, -4.5, epsilon) {
		t.Errorf("重新派生后 X 偏移不符: 期望 -4.5, 得到 %v", chart.Data.XOffset)
	}
}
