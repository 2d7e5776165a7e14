package debug

import (
	"encoding/json"
	"io"

	"chargesim"
	"chargesim/types"

	"github.com/google/uuid"
)

// Record 记录历史状态
type Record struct {
	ID       string      // 运行标识
	Every    int         // 每隔多少步记录一次，不大于 1 时每步记录
	Elements []string    // 元件列表
	Nodes    []string    // 连接点列表
	Links    [][]string  // 连接信息，每个连接点连接的元件
	Time     []float64   // 时间列
	Voltage  [][]float64 // 电压列，每行对应一个时间点
	Current  [][]float64 // 电流列
	Charge   [][]float64 // 连接点电荷列
}

// NewRecord 创建记录
func NewRecord(every int) *Record {
	return &Record{ID: uuid.NewString(), Every: every}
}

// Init 初始化，记录电路结构和初始状态
func (list *Record) Init(cir *chargesim.Circuit) {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	ele := cir.List()
	list.Elements = make([]string, len(ele))
	for i, e := range ele {
		list.Elements[i] = e.GetName()
	}
	list.Nodes = make([]string, cir.Nodes.Len())
	list.Links = make([][]string, cir.Nodes.Len())
	for i := range list.Nodes {
		list.Nodes[i] = cir.Name(types.NodeID(i))
		list.Links[i] = cir.Links(types.NodeID(i))
	}
	list.Time, list.Voltage, list.Current, list.Charge = nil, nil, nil, nil
	list.sample(cir)
}

// Update 记录数据
func (list *Record) Update(cir *chargesim.Circuit) {
	if list.Every > 1 && cir.Time().Steps()%list.Every != 0 {
		return
	}
	list.sample(cir)
}

func (list *Record) sample(cir *chargesim.Circuit) {
	ele := cir.List()
	voltage, current := make([]float64, len(ele)), make([]float64, len(ele))
	for i, e := range ele {
		voltage[i] = e.GetVoltage()
		current[i] = e.GetCurrent()
	}
	list.Time = append(list.Time, cir.Time().Time())
	list.Voltage = append(list.Voltage, voltage)
	list.Current = append(list.Current, current)
	list.Charge = append(list.Charge, cir.Charges())
}

// Len 记录的时间点数量
func (list *Record) Len() int { return len(list.Time) }

// Column 取出第 i 个元件的一列数据
func Column(rows [][]float64, i int) []float64 {
	out := make([]float64, len(rows))
	for n, row := range rows {
		if i < len(row) {
			out[n] = row[i]
		}
	}
	return out
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
