package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/chart3d"
	"github.com/zooyer/chart3d/core"
	"github.com/zooyer/chart3d/entities"
	"github.com/zooyer/chart3d/utils"
)

// Config 图表数据文件格式（JSON）
type Config struct {
	Type   string  `json:"type"` // bar、line、pie 三选一
	Bars   []Bar   `json:"bars,omitempty"`
	Points []Point `json:"points,omitempty"`
	Slices []Slice `json:"slices,omitempty"`
	Rotate Rotate  `json:"rotate,omitempty"` // 角度制，按 X/Y/Z 分量累加到图表主体
}

type Bar struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
	Depth float64 `json:"depth,omitempty"`
}

type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z,omitempty"`
	Label string  `json:"label,omitempty"`
}

type Slice struct {
	Label  string  `json:"label,omitempty"`
	Value  float64 `json:"value"`
	Height float64 `json:"height,omitempty"`
}

type Rotate struct {
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`
}

func init() {
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") {
		os.Args = append(os.Args, "cmd/testdata/销售.json")
	}

	if len(os.Args) >= 2 {
		return
	}

	// 没有参数时弹出文件选择框
	filename, err := zenity.SelectFile(
		zenity.Title("选择图表数据文件"),
		zenity.FileFilters{{Name: "JSON 文件", Patterns: []string{"*.json"}, CaseFold: true}},
	)
	if err != nil {
		fmt.Println("请把JSON数据文件拖入该程序上执行！")
		xos.PauseExit()
		os.Exit(1)
	}

	os.Args = append(os.Args, filename)
}

// buildLayout 按配置构建图表并布局
func buildLayout(config Config) (layout *chart3d.Layout, err error) {
	switch strings.ToLower(config.Type) {
	case "bar":
		var nodes []chart3d.BarNode
		for _, b := range config.Bars {
			nodes = append(nodes, chart3d.BarNode{Label: b.Label, Value: b.Value, Depth: b.Depth})
		}

		chart, err := chart3d.NewBarChart(nodes, chart3d.DefaultBarChartStyle())
		if err != nil {
			return nil, err
		}
		rotate(&chart.Rotation, config.Rotate)
		return chart.Layout(), nil
	case "line":
		var points []chart3d.LinePoint
		for _, p := range config.Points {
			points = append(points, chart3d.LinePoint{X: p.X, Y: p.Y, Z: p.Z, Label: p.Label})
		}

		chart, err := chart3d.NewLineChart(points, chart3d.DefaultLineChartStyle())
		if err != nil {
			return nil, err
		}
		rotate(&chart.Rotation, config.Rotate)
		return chart.Layout(), nil
	case "pie":
		var slices []chart3d.PieSlice
		for _, s := range config.Slices {
			slices = append(slices, chart3d.PieSlice{Label: s.Label, Value: s.Value, Height: s.Height})
		}

		chart, err := chart3d.NewPieChart(slices, chart3d.DefaultPieChartStyle())
		if err != nil {
			return nil, err
		}
		rotate(&chart.Rotation, config.Rotate)
		return chart.Layout(), nil
	}

	return nil, fmt.Errorf("未知图表类型: %q", config.Type)
}

func rotate(r *core.Rotation, deg Rotate) {
	r.RotateDegrees(deg.X, core.AxisX)
	r.RotateDegrees(deg.Y, core.AxisY)
	r.RotateDegrees(deg.Z, core.AxisZ)
}

// describe 返回图元的尺寸与附加信息描述
func describe(prim entities.Primitive) string {
	switch p := prim.(type) {
	case *entities.Box:
		return fmt.Sprintf("%.2f x %.2f x %.2f", p.Width, p.Height, p.Length)
	case *entities.Cylinder:
		return fmt.Sprintf("半径 %.2f 长度 %.2f 方向 (%.2f, %.2f, %.2f)",
			p.Radius, p.Height, p.Direction.X, p.Direction.Y, p.Direction.Z)
	case *entities.Cone:
		return fmt.Sprintf("底半径 %.2f 高度 %.2f 指向 (%.2f, %.2f, %.2f)",
			p.BottomRadius, p.Height, p.LookAt.X, p.LookAt.Y, p.LookAt.Z)
	case *entities.Sector:
		return fmt.Sprintf("半径 %.2f 角度 %.3f-%.3f 厚度 %.2f",
			p.Radius, p.StartAngle, p.EndAngle, p.Height)
	case *entities.TextLabel:
		return fmt.Sprintf("文字 %q", p.Text)
	}

	return ""
}

func main() {
	defer xos.PauseExit()

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	var config Config
	if err = json.Unmarshal(data, &config); err != nil {
		panic(err)
	}

	layout, err := buildLayout(config)
	if err != nil {
		panic(err)
	}

	// 1. 打印图元清单
	fmt.Printf("开始处理: %s 图表, 主体 %d 个图元, 标签 %d 个...\n",
		config.Type, len(layout.Primitives), len(layout.Labels))

	for i, prim := range layout.Primitives {
		var pos = prim.Position()
		fmt.Printf("[图元%02d] | %-8s | (%.2f, %.2f, %.2f) | %s\n",
			i+1, prim.Type(), pos.X, pos.Y, pos.Z, describe(prim))
	}
	for i, prim := range layout.Labels {
		var pos = prim.Position()
		fmt.Printf("[标签%02d] | %-8s | (%.2f, %.2f, %.2f) | %s\n",
			i+1, prim.Type(), pos.X, pos.Y, pos.Z, describe(prim))
	}

	// 2. 打印整体包围盒（相机取景用）
	var box = utils.GroupBBox(layout.Primitives)
	fmt.Printf("整体范围: (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)

	// 3. 写入 CSV
	var filename = strings.TrimSuffix(os.Args[1], filepath.Ext(os.Args[1])) + ".csv"
	_ = os.WriteFile(filename, []byte("组,类型,X,Y,Z,颜色,描述\n"), 0644)
	fmt.Println("写入文件:", filename)

	write := func(group string, prims []entities.Primitive) {
		for _, prim := range prims {
			var pos = prim.Position()
			var line = fmt.Sprintf("%s,%s,%f,%f,%f,%s,%s\n",
				group, prim.Type(), pos.X, pos.Y, pos.Z, prim.Color().Hex(), describe(prim))

			if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
				panic(err)
			}
		}
	}

	write("主体", layout.Primitives)
	write("标签", layout.Labels)
}
