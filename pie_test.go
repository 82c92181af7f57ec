package chart3d

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/chart3d/entities"
)

func TestNewPieData_Empty(t *testing.T) {
	if _, err := NewPieData(nil, DefaultPieChartStyle()); !errors.Is(err, ErrNoData) {
		t.Fatalf("空序列应返回 ErrNoData, 得到 %v", err)
	}
}

func TestNewPieData_Angles(t *testing.T) {
	slices := []PieSlice{{Value: 1}, {Value: 1}, {Value: 2}}

	data, err := NewPieData(slices, DefaultPieChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	if !xmath.Equal(data.TotalValue, 4, epsilon) {
		t.Errorf("总份额不符: 期望 4, 得到 %v", data.TotalValue)
	}

	expected := []float64{0, math.Pi / 2, math.Pi, 2 * math.Pi}
	if len(data.Angles) != len(expected) {
		t.Fatalf("角度数量不符: 期望 %d, 得到 %d", len(expected), len(data.Angles))
	}

	for i, want := range expected {
		if !xmath.Equal(data.Angles[i], want, epsilon) {
			t.Errorf("第 %d 个边界角不符: 期望 %v, 得到 %v", i, want, data.Angles[i])
		}
	}

	// 边界角单调不减
	for i := 1; i < len(data.Angles); i++ {
		if data.Angles[i] < data.Angles[i-1] {
			t.Errorf("边界角不单调: %v", data.Angles)
		}
	}
}

func TestNewPieData_ZeroTotal(t *testing.T) {
	// 总份额为零按等分角处理
	slices := []PieSlice{{Value: 0}, {Value: 0}, {Value: 0}}

	data, err := NewPieData(slices, DefaultPieChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	expected := []float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3, 2 * math.Pi}
	for i, want := range expected {
		if !xmath.Equal(data.Angles[i], want, epsilon) {
			t.Errorf("第 %d 个边界角不符: 期望 %v, 得到 %v", i, want, data.Angles[i])
		}
	}
}

func TestNewPieData_Colors(t *testing.T) {
	var red = colorful.Color{R: 1}

	slices := []PieSlice{{Value: 1}, {Value: 2, Color: red}, {Value: 3}}

	data, err := NewPieData(slices, DefaultPieChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	// 指定过的颜色保留，零值从调色板补齐
	if data.Slices[1].Color != red {
		t.Errorf("指定颜色被覆盖: %+v", data.Slices[1].Color)
	}
	if data.Slices[0].Color == (colorful.Color{}) || data.Slices[2].Color == (colorful.Color{}) {
		t.Errorf("未指定颜色没有补齐: %+v", data.Slices)
	}
}

func TestNewPieData_TotalHeight(t *testing.T) {
	slices := []PieSlice{{Value: 1}, {Value: 1, Height: 2}, {Value: 1}}

	data, err := NewPieData(slices, DefaultPieChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	if !xmath.Equal(data.TotalHeight, 2, epsilon) {
		t.Errorf("最大厚度不符: 期望 2, 得到 %v", data.TotalHeight)
	}
}

func TestPieChart_Layout(t *testing.T) {
	slices := []PieSlice{{Label: "甲", Value: 1}, {Value: 1, Height: 3}, {Value: 2}}

	chart, err := NewPieChart(slices, DefaultPieChartStyle())
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	var layout = chart.Layout()

	// 饼图没有坐标轴，只有切片
	if len(layout.Primitives) != 3 {
		t.Fatalf("主体图元数量不符: 期望 3, 得到 %d", len(layout.Primitives))
	}

	first, ok := layout.Primitives[0].(*entities.Sector)
	if !ok {
		t.Fatalf("图元类型不符: %s", layout.Primitives[0].Type())
	}

	if !xmath.Equal(first.StartAngle, 0, epsilon) || !xmath.Equal(first.EndAngle, math.Pi/2, epsilon) {
		t.Errorf("切片角度不符: %v - %v", first.StartAngle, first.EndAngle)
	}
	// 厚度未设置默认为 1
	if !xmath.Equal(first.Height, 1, epsilon) {
		t.Errorf("默认厚度不符: %v", first.Height)
	}

	second := layout.Primitives[1].(*entities.Sector)
	if !xmath.Equal(second.Height, 3, epsilon) {
		t.Errorf("指定厚度不符: %v", second.Height)
	}

	// 标签锚在角平分线方向 1.2 倍半径处的底平面
	if len(layout.Labels) != 1 {
		t.Fatalf("标签数量不符: %d", len(layout.Labels))
	}

	var (
		anchor = layout.Labels[0].Position()
		mid    = math.Pi / 4
	)
	if !xmath.Equal(anchor.X, 1.2*math.Cos(mid), epsilon) ||
		!xmath.Equal(anchor.Y, 1.2*math.Sin(mid), epsilon) ||
		anchor.Z != 0 {
		t.Errorf("标签锚点不符: %+v", anchor)
	}
}
