package debug

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*Record
}

// lineChart 创建时间曲线
func lineChart(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	return line
}

// addSeries 每个名称一条曲线
func addSeries(line *charts.Line, names []string, rows [][]float64) {
	for i, name := range names {
		col := Column(rows, i)
		data := make([]opts.LineData, len(col))
		for n, v := range col {
			data[n] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data)
	}
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 电路连接图
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电路节点信息",
			Subtitle: fmt.Sprintf("运行 %s", c.ID),
		}),
	)
	graphNodes := make([]opts.GraphNode, 0, len(c.Elements)+len(c.Nodes))
	graphLinks := make([]opts.GraphLink, 0)
	for _, name := range c.Elements {
		graphNodes = append(graphNodes, opts.GraphNode{Name: name, Category: 0})
	}
	for i, name := range c.Nodes {
		// 连接点名称可能与元件重名
		node := "@" + name
		graphNodes = append(graphNodes, opts.GraphNode{Name: node, Category: 1})
		for _, ele := range c.Links[i] {
			graphLinks = append(graphLinks, opts.GraphLink{Source: ele, Target: node})
		}
	}
	graph.AddSeries("电路列表", graphNodes, graphLinks,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "元件", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "节点", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:  opts.Bool(true),
			Force: &opts.GraphForce{Repulsion: 80},
		}))

	lineV := lineChart("电压曲线", "元件电压随时间变化曲线")
	lineV.SetXAxis(c.Time)
	addSeries(lineV, c.Elements, c.Voltage)

	lineA := lineChart("电流曲线", "元件电流随时间变化曲线")
	lineA.SetXAxis(c.Time)
	addSeries(lineA, c.Elements, c.Current)

	lineQ := lineChart("电荷曲线", "连接点电荷随时间变化曲线")
	lineQ.SetXAxis(c.Time)
	addSeries(lineQ, c.Nodes, c.Charge)

	// 构建界面
	page := components.NewPage()
	page.AddCharts(graph, lineV, lineA, lineQ)
	return page.Render(w)
}
