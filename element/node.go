package element

import (
	"math"

	"chargesim/types"
)

// Node 元件节点结构体，存储元件的动态数据和连接信息。
// 连接点不属于元件，元件只保存节点索引。
type Node struct {
	ConfigPtr *Config        // 配置项指针。
	NodeType  NodeType       // 元件类型标识，对应ElementList中的注册类型。
	Name      string         // 元件名称。
	NodeValue []any          // 元件当前数据，存储仿真过程中变化的参数值。
	Nodes     []types.NodeID // 节点索引列表，存储元件引脚连接的节点。
	Voltage   float64        // 元件两端电压。
	Current   float64        // 流过元件的电流。
}

// Base 获取元件的底层节点结构体指针。
func (node *Node) Base() *Node { return node }

// Config 获取元件配置信息。
func (node *Node) Config() *Config { return node.ConfigPtr }

// Type 获取元件的类型标识。
func (node *Node) Type() NodeType { return node.NodeType }

// GetName 元件名称。
func (node *Node) GetName() string { return node.Name }

// GetVoltage 元件两端电压。
func (node *Node) GetVoltage() float64 { return node.Voltage }

// GetCurrent 流过元件的电流。
func (node *Node) GetCurrent() float64 { return node.Current }

// SetVoltage 设置电压。
func (node *Node) SetVoltage(v float64) { node.Voltage = v }

// SetCurrent 设置电流。
func (node *Node) SetCurrent(v float64) { node.Current = v }

// GetNodes 获取指定引脚连接的节点。
// 参数i: 引脚索引（0-based）。
// 返回：对应引脚的节点索引，如果索引无效则返回未连接标记。
func (node *Node) GetNodes(i int) types.NodeID {
	if i >= 0 && i < len(node.Nodes) {
		return node.Nodes[i]
	}
	return types.ElementUnlinkedNodeID
}

// SetNodePin 设置指定引脚连接的节点。
func (node *Node) SetNodePin(i int, n types.NodeID) {
	if i >= 0 && i < len(node.Nodes) {
		node.Nodes[i] = n
	}
}

// SetNodePins 设置引脚连接的节点。
// 参数n: 引脚连接节点列表。
func (node *Node) SetNodePins(n ...types.NodeID) {
	if len(n) <= len(node.Nodes) {
		copy(node.Nodes, n)
	}
}

// GetFloat64 获取指定索引处的浮点数值参数。
// 参数i: 参数索引（0-based）。
// 返回：对应位置的浮点数值，如果索引无效则返回0。
func (node *Node) GetFloat64(i int) float64 {
	if i >= 0 && i < len(node.NodeValue) {
		return node.NodeValue[i].(float64)
	}
	return 0
}

// SetFloat64 设置指定索引处的浮点数值参数。
func (node *Node) SetFloat64(i int, v float64) {
	if i >= 0 && i < len(node.NodeValue) {
		node.NodeValue[i] = v
	}
}

// terminals 得到两端连接点
func (node *Node) terminals(nodes *types.Nodes) (a, b *types.Connection, err error) {
	if a, err = nodes.Lookup(node.GetNodes(0)); err != nil {
		return nil, nil, err
	}
	if b, err = nodes.Lookup(node.GetNodes(1)); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// UpdateVoltage 电压为两端电荷差的绝对值。
func (node *Node) UpdateVoltage(nodes *types.Nodes) error {
	a, b, err := node.terminals(nodes)
	if err != nil {
		return err
	}
	node.Voltage = math.Abs(a.Charge() - b.Charge())
	return nil
}

// UpdateConnectionCharges 从高电荷端取出 amount 放到低电荷端。
// 取出失败时两端都不修改。
func (node *Node) UpdateConnectionCharges(nodes *types.Nodes, amount float64) error {
	a, b, err := node.terminals(nodes)
	if err != nil {
		return err
	}
	high, low := a, b
	if b.Charge() > a.Charge() {
		high, low = b, a
	}
	if err := high.DecreaseCharge(amount); err != nil {
		return err
	}
	return low.IncreaseCharge(amount)
}

// DischargeConnectionCharges 从低电荷端取出 amount 放到高电荷端。
func (node *Node) DischargeConnectionCharges(nodes *types.Nodes, amount float64) error {
	a, b, err := node.terminals(nodes)
	if err != nil {
		return err
	}
	high, low := a, b
	if b.Charge() > a.Charge() {
		high, low = b, a
	}
	if err := low.DecreaseCharge(amount); err != nil {
		return err
	}
	return high.IncreaseCharge(amount)
}
