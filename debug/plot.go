package debug

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Quantity 绘制的物理量
type Quantity uint8

const (
	QuantityVoltage Quantity = iota // 元件电压
	QuantityCurrent                 // 元件电流
	QuantityCharge                  // 连接点电荷
)

func (q Quantity) String() string {
	switch q {
	case QuantityVoltage:
		return "voltage"
	case QuantityCurrent:
		return "current"
	case QuantityCharge:
		return "charge"
	}
	return fmt.Sprintf("Quantity(%d)", uint8(q))
}

// Plot 曲线图片
type Plot struct {
	*Record
	Width  vg.Length // 图片宽度
	Height vg.Length // 图片高度
}

// NewPlot 默认 8x4 英寸
func NewPlot(record *Record) *Plot {
	return &Plot{Record: record, Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

// Plot 构建指定物理量的曲线
func (p *Plot) Plot(q Quantity) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s %s", q, p.ID)
	pl.X.Label.Text = "t"
	names, rows := p.Elements, p.Voltage
	switch q {
	case QuantityVoltage:
		pl.Y.Label.Text = "V"
	case QuantityCurrent:
		pl.Y.Label.Text = "A"
		rows = p.Current
	case QuantityCharge:
		pl.Y.Label.Text = "V"
		names, rows = p.Nodes, p.Charge
	default:
		return nil, fmt.Errorf("未知物理量: %s", q)
	}
	lines := make([]any, 0, 2*len(names))
	for i, name := range names {
		col := Column(rows, i)
		xys := make(plotter.XYs, len(col))
		for n := range col {
			xys[n].X = p.Time[n]
			xys[n].Y = col[n]
		}
		lines = append(lines, name, xys)
	}
	if err := plotutil.AddLines(pl, lines...); err != nil {
		return nil, err
	}
	pl.Legend.Top = true
	return pl, nil
}

// Render 输出图片，format 为 png、svg、pdf 等
func (p *Plot) Render(w io.Writer, q Quantity, format string) error {
	pl, err := p.Plot(q)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(p.Width, p.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save 保存图片，格式由扩展名决定
func (p *Plot) Save(q Quantity, path string) error {
	pl, err := p.Plot(q)
	if err != nil {
		return err
	}
	return pl.Save(p.Width, p.Height, path)
}
