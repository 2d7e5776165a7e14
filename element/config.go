package element

import (
	"strings"

	"chargesim/types"
)

// Config 元件配置结构体，存储元件的静态配置信息。
// 这些配置在元件创建时初始化，并在整个仿真过程中保持不变。
type Config struct {
	Name      string   // 元件简称（如 "r" 表示电阻）。
	Title     string   // 元件全称（如 "Resistor"）。
	Pin       []string // 引脚名称列表，定义元件的外部连接点。
	ValueInit []any    // 初始化数据，存储元件的参数初始值（如电阻值、电压值等）。
	ValueName []string // 参数名称。
	OrigValue []int    // 重置时恢复为初始值的参数索引。
}

// GetConfig 获取元件配置的指针。
func (config *Config) GetConfig() *Config {
	return config
}

// GetName 元件简称（大写）。
func (config *Config) GetName() string {
	return strings.ToUpper(config.Name)
}

// Reset 重置元件状态到初始值。
// 清零电压电流，并把 OrigValue 指向的参数恢复为初始值。
func (config *Config) Reset(base NodeFace) {
	base.SetVoltage(0)
	base.SetCurrent(0)
	node := base.Base()
	for _, i := range config.OrigValue {
		node.NodeValue[i] = config.ValueInit[i]
	}
}

// PinNum 获取元件的外部引脚数量。
func (config *Config) PinNum() int { return len(config.Pin) }

// ValueNum 获取元件的参数数量。
func (config *Config) ValueNum() int { return len(config.ValueInit) }

// 以下为空实现方法，为Config结构体提供默认的元件行为。
// 具体元件类型可以通过重写这些方法来实现自定义行为。

// Step 执行仿真步长计算（空实现）。
func (Config) Step(nodes *types.Nodes, time types.Time, value NodeFace) error { return nil }

// UpdateCurrent 计算元件电流（空实现）。
func (Config) UpdateCurrent(time types.Time, value NodeFace) {}
