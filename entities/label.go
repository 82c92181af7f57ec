package entities

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zooyer/chart3d/core"
)

// TextLabel 代表文字锚点图元
//
// 只描述文字内容与锚点位置，字体与排版由渲染器决定。
type TextLabel struct {
	BasePrimitive
	Text string
}

// NewTextLabel 在指定锚点创建文字图元
func NewTextLabel(position core.Vector, text string, paint colorful.Color) *TextLabel {
	return &TextLabel{
		BasePrimitive: BasePrimitive{TypeName: "TEXT", Center: position, Paint: paint},
		Text:          text,
	}
}

func (t *TextLabel) BBox() core.BBox {
	// 简化处理：文字暂时以锚点作为包围盒
	return core.BBox{Min: t.Center, Max: t.Center}
}
