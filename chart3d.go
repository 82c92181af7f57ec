// Package chart3d 将抽象数据序列转换为三维图元布局。
//
// 支持柱状图、折线图、饼图三类图表：原始数值序列先由数据模型归一化
// （居中、求跨度、分配角度），再由编排器组合样式与坐标轴，输出一组
// 带位置/朝向/颜色的图元描述（长方体、圆柱、圆锥、扇形柱、文字锚点）。
// 本包只做纯几何计算，真正的绘制由外部渲染器消费图元列表完成。
package chart3d

import (
	"errors"

	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
)

// ErrNoData 输入序列为空，无法构建图表数据
var ErrNoData = errors.New("chart3d: 数据序列为空")

// Extents 代表图表沿三个轴的总跨度
type Extents struct {
	Width  float64 // X 方向跨度
	Height float64 // Y 方向跨度
	Length float64 // Z 方向跨度（深度），0 表示平面图表
}

// Data 所有图表数据的公共接口
type Data interface {
	Count() int
}

// WithExtents 具有坐标轴跨度的图表数据（柱状图、折线图）
type WithExtents interface {
	Data
	Extents() Extents
}

// Layout 代表一次布局的完整结果
//
// 标签图元单独成组，渲染器可以只旋转标签组（例如主体旋转后
// 把文字转回正对相机）。相同输入重复布局，结果完全一致。
type Layout struct {
	Primitives  []entities.Primitive // 图表主体图元
	Labels      []entities.Primitive // 标签图元
	Orientation core.Rotation        // 主体与标签组各自的累计朝向
}

var (
	_ WithExtents = (*BarData)(nil)
	_ WithExtents = (*LineData)(nil)
	_ Data        = (*PieData)(nil)
)
