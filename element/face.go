package element

import (
	"fmt"
	"log"
	"strings"

	"chargesim/types"
)

// elementFace 元件接口，组合了配置接口和元件实现接口
// 这是内部使用的接口类型，用于统一管理元件的配置和行为
type elementFace interface {
	ConfigFace  // 元件配置接口，提供元件的静态配置信息
	ElementFace // 元件实现接口，提供元件的仿真行为
}

// ElementList 元件类型注册表
// 键：NodeType（元件类型标识）
// 值：elementFace（元件接口实现）
var ElementList = map[NodeType]elementFace{}

// ElementListName 元件名称到类型的映射，名称统一为大写
var ElementListName = map[string]NodeType{}

// AddElement 注册元件类型到全局元件列表
// 参数eleType: 元件类型标识，必须是唯一的
// 参数face: 元件接口实现，包含配置和行为的完整实现
// 返回：注册成功的元件类型标识
// 注意：如果元件类型或名称已注册，会触发致命错误并终止程序
func AddElement(eleType NodeType, face elementFace) NodeType {
	if _, ok := ElementList[eleType]; ok {
		log.Fatalf("元件重复注册: %d", eleType)
	}
	name := face.GetConfig().GetName()
	if _, ok := ElementListName[name]; ok {
		log.Fatalf("元件名称重复注册: %s", name)
	}
	ElementList[eleType] = face
	ElementListName[name] = eleType
	return eleType
}

// NewElementValue 根据元件类型创建新的元件实例
// 参数eleType: 元件类型标识，必须是已注册的类型
// 参数name: 元件名称，用于报表输出
// 参数pins: 引脚连接的节点，数量不足的引脚保持未连接
// 参数value: 元件的初始化参数，nil 表示使用默认值
// 返回：新创建的元件节点接口，如果类型未注册则返回nil
func NewElementValue(eleType NodeType, name string, pins []types.NodeID, value ...any) NodeFace {
	ele, ok := ElementList[eleType]
	if !ok {
		return nil
	}
	config := ele.GetConfig()
	node := &Node{
		ConfigPtr: config,
		NodeType:  eleType,
		Name:      name,
		NodeValue: make([]any, config.ValueNum()),
		Nodes:     make([]types.NodeID, config.PinNum()),
	}
	// 初始化参数
	copy(node.NodeValue, config.ValueInit)
	for i, v := range value {
		if v != nil && i < len(node.NodeValue) {
			node.NodeValue[i] = v
		}
	}
	// 设置引脚
	for i := range node.Nodes {
		node.Nodes[i] = types.ElementUnlinkedNodeID
	}
	node.SetNodePins(pins...)
	// 元件初始化
	ele.Reset(node)
	return node
}

// NewElementByName 根据元件名称（如 "r"、"Resistor"）创建元件实例
func NewElementByName(kind, name string, pins []types.NodeID, value ...any) (NodeFace, error) {
	eleType, ok := LookupType(kind)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", types.ErrUnknownElement, kind)
	}
	if n := eleType.PinNum(); len(pins) != n {
		return nil, fmt.Errorf("元件 '%s' 引脚数量错误。需要 %d，得到 %d", name, n, len(pins))
	}
	return NewElementValue(eleType, name, pins, value...), nil
}

// LookupType 根据名称查找元件类型，支持简称与全称
func LookupType(kind string) (NodeType, bool) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if t, ok := ElementListName[kind]; ok {
		return t, true
	}
	for t, ele := range ElementList {
		if strings.ToUpper(ele.GetConfig().Title) == kind {
			return t, true
		}
	}
	return 0, false
}

// NodeType 元件类型标识
// 每个元件类型都有一个唯一的NodeType值，用于在ElementList中标识和查找
type NodeType uint

// Config 获取指定元件类型的配置信息
// 返回：指向元件配置结构体的指针，如果类型未注册则返回nil
func (t NodeType) Config() *Config {
	if node, ok := ElementList[t]; ok {
		return node.GetConfig()
	}
	return nil
}

// PinNum 获取指定元件类型的引脚数量
func (t NodeType) PinNum() int {
	if node, ok := ElementList[t]; ok {
		return node.PinNum()
	}
	return 0
}

// ValueNum 获取指定元件类型的参数数量
func (t NodeType) ValueNum() int {
	if node, ok := ElementList[t]; ok {
		return node.ValueNum()
	}
	return 0
}

// String 元件类型全称
func (t NodeType) String() string {
	if config := t.Config(); config != nil {
		return config.Title
	}
	return fmt.Sprintf("NodeType(%d)", uint(t))
}

// NodeFace 元件节点接口，提供对元件动态数据的访问和操作
// 这是仿真过程中元件实例的主要接口
type NodeFace interface {
	Type() NodeType                                                      // 获取元件类型标识
	Base() *Node                                                         // 获取底层节点结构体指针
	Config() *Config                                                     // 获取元件配置
	GetName() string                                                     // 元件名称
	GetVoltage() float64                                                 // 元件两端电压
	GetCurrent() float64                                                 // 流过元件的电流
	SetVoltage(v float64)                                                // 设置电压
	SetCurrent(v float64)                                                // 设置电流
	GetFloat64(i int) float64                                            // 获取第i个浮点数值参数
	SetFloat64(i int, v float64)                                         // 设置第i个浮点数值参数
	GetNodes(i int) types.NodeID                                         // 获取第i个引脚连接的节点
	SetNodePin(i int, n types.NodeID)                                    // 设置指定引脚连接的节点
	SetNodePins(n ...types.NodeID)                                       // 设置引脚连接的节点
	UpdateVoltage(nodes *types.Nodes) error                              // 根据两端电荷更新电压
	UpdateConnectionCharges(nodes *types.Nodes, amount float64) error    // 电荷从高电荷端移到低电荷端
	DischargeConnectionCharges(nodes *types.Nodes, amount float64) error // 电荷从低电荷端移到高电荷端
}

// ConfigFace 元件配置接口，提供元件的静态配置信息
type ConfigFace interface {
	GetConfig() *Config  // 获取元件配置结构体指针
	PinNum() int         // 获取外部引脚数量
	ValueNum() int       // 获取元件参数数量
	Reset(base NodeFace) // 重置元件状态到初始值
}

// ElementFace 元件实现接口，定义元件在仿真过程中的行为
type ElementFace interface {
	Step(nodes *types.Nodes, time types.Time, value NodeFace) error // 执行一个时间步长，移动两端电荷并更新电压
	UpdateCurrent(time types.Time, value NodeFace)                  // 计算元件电流
}
