package core

import (
	"testing"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		axis Axis
		name string
		unit Vector
	}{
		{AxisX, "X", Vector{X: 1}},
		{AxisY, "Y", Vector{Y: 1}},
		{AxisZ, "Z", Vector{Z: 1}},
	}

	for _, test := range tests {
		if test.axis.String() != test.name {
			t.Errorf("轴名不符: 期望 %s, 得到 %s", test.name, test.axis.String())
		}
		if test.axis.Unit() != test.unit {
			t.Errorf("%s 轴单位向量不符: 得到 %+v", test.name, test.axis.Unit())
		}
	}
}

func TestBBox_Extend(t *testing.T) {
	var box = BBox{
		Min: Vector{X: 0, Y: 0, Z: 0},
		Max: Vector{X: 1, Y: 1, Z: 1},
	}

	box = box.Extend(Vector{X: -2, Y: 3, Z: 0.5})

	if box.Min != (Vector{X: -2, Y: 0, Z: 0}) {
		t.Errorf("Min 不符: %+v", box.Min)
	}
	if box.Max != (Vector{X: 1, Y: 3, Z: 1}) {
		t.Errorf("Max 不符: %+v", box.Max)
	}
}
