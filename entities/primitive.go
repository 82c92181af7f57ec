package entities

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zooyer/chart3d/core"
)

// Primitive 是一切图元描述的接口
//
// 图元只描述几何参数（尺寸、位置、朝向、颜色），
// 由外部渲染器负责生成真正可绘制的几何体。
type Primitive interface {
	Type() string
	Position() core.Vector
	Color() colorful.Color
	BBox() core.BBox
}

// BasePrimitive 存放所有图元通用的属性（类型名、中心位置、颜色）
type BasePrimitive struct {
	TypeName string
	Center   core.Vector
	Paint    colorful.Color
}

func (b *BasePrimitive) Type() string { return b.TypeName }

func (b *BasePrimitive) Position() core.Vector { return b.Center }

func (b *BasePrimitive) Color() colorful.Color { return b.Paint }
