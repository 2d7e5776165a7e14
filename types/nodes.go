package types

import (
	"fmt"
	"slices"
)

// Nodes 连接点表。
// 元件只保存 NodeID，连接点本身由节点表持有，多个元件通过同一个 NodeID 共享电荷。
type Nodes struct {
	list  []*Connection // 连接点
	names []string      // 连接点名称
	links [][]string    // 记录连接到节点的元件
}

// NewNodes 初始化
func NewNodes() *Nodes {
	return &Nodes{}
}

// AddNode 添加连接点，名称为空时使用索引命名
func (nodes *Nodes) AddNode(name string) NodeID {
	id := NodeID(len(nodes.list))
	if name == "" {
		name = fmt.Sprintf("Node(%d)", id)
	}
	nodes.list = append(nodes.list, &Connection{})
	nodes.names = append(nodes.names, name)
	nodes.links = append(nodes.links, nil)
	return id
}

// AddNodes 批量添加连接点
func (nodes *Nodes) AddNodes(names ...string) []NodeID {
	ids := make([]NodeID, len(names))
	for i, name := range names {
		ids[i] = nodes.AddNode(name)
	}
	return ids
}

// Len 连接点数量
func (nodes *Nodes) Len() int { return len(nodes.list) }

// Valid 判断索引是否有效
func (nodes *Nodes) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(nodes.list)
}

// Lookup 获取连接点
func (nodes *Nodes) Lookup(id NodeID) (*Connection, error) {
	if !nodes.Valid(id) {
		return nil, fmt.Errorf("%w: 连接点 %d 不存在", ErrInvalidArgument, id)
	}
	return nodes.list[id], nil
}

// Connection 获取连接点，索引无效时返回 nil
func (nodes *Nodes) Connection(id NodeID) *Connection {
	if !nodes.Valid(id) {
		return nil
	}
	return nodes.list[id]
}

// Name 连接点名称
func (nodes *Nodes) Name(id NodeID) string {
	if !nodes.Valid(id) {
		return ""
	}
	return nodes.names[id]
}

// Find 按名称查找连接点
func (nodes *Nodes) Find(name string) (NodeID, bool) {
	i := slices.Index(nodes.names, name)
	return NodeID(i), i >= 0
}

// Charges 所有连接点的电荷快照
func (nodes *Nodes) Charges() []float64 {
	out := make([]float64, len(nodes.list))
	for i, con := range nodes.list {
		out[i] = con.Charge()
	}
	return out
}

// Reset 所有连接点电荷清零
func (nodes *Nodes) Reset() {
	for _, con := range nodes.list {
		con.SetCharge(0)
	}
}

// Link 记录元件连接到节点
func (nodes *Nodes) Link(id NodeID, element string) {
	if !nodes.Valid(id) || slices.Contains(nodes.links[id], element) {
		return
	}
	nodes.links[id] = append(nodes.links[id], element)
}

// Unlink 删除元件与节点的连接记录
func (nodes *Nodes) Unlink(id NodeID, element string) {
	if !nodes.Valid(id) {
		return
	}
	if i := slices.Index(nodes.links[id], element); i >= 0 {
		nodes.links[id] = slices.Delete(nodes.links[id], i, i+1)
	}
}

// Links 连接到节点的元件名称
func (nodes *Nodes) Links(id NodeID) []string {
	if !nodes.Valid(id) {
		return nil
	}
	return slices.Clone(nodes.links[id])
}
