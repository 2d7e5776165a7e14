package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"chargesim"
	"chargesim/element"
	eletime "chargesim/element/time"
	"chargesim/types"

	"gopkg.in/yaml.v3"
)

// Config 仿真配置（YAML）
type Config struct {
	Steps    int             `yaml:"steps"`     // 仿真步数
	Lines    int             `yaml:"lines"`     // 输出行数，0 表示不输出
	TimeStep float64         `yaml:"time_step"` // 时间步长
	Voltage  float64         `yaml:"voltage"`   // 电源电压，元件值写 voltage 时使用
	Circuits []CircuitConfig `yaml:"circuits"`  // 电路列表，按顺序仿真
}

// CircuitConfig 一个电路的拓扑
type CircuitConfig struct {
	Name       string            `yaml:"name"`
	Nodes      []string          `yaml:"nodes,omitempty"` // 连接点，为空时按引脚出现顺序创建
	Components []ComponentConfig `yaml:"components"`
}

// ComponentConfig 元件定义
type ComponentConfig struct {
	Type  string   `yaml:"type"` // 元件类型，简称或全称
	Name  string   `yaml:"name"`
	Value Value    `yaml:"value,omitempty"`
	Pins  []string `yaml:"pins"`
}

// Value 元件值：数值、字符串 voltage 或留空使用默认值
type Value struct {
	Number  *float64
	Voltage bool
}

// Number 数值
func Number(v float64) Value { return Value{Number: &v} }

// SourceVoltage 使用运行时电源电压
func SourceVoltage() Value { return Value{Voltage: true} }

// UnmarshalYAML 解析元件值
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && strings.EqualFold(node.Value, "voltage") {
		*v = SourceVoltage()
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("第 %d 行: 元件值必须是数值或 voltage: %w", node.Line, err)
	}
	*v = Number(f)
	return nil
}

// MarshalYAML 输出元件值
func (v Value) MarshalYAML() (any, error) {
	switch {
	case v.Voltage:
		return "voltage", nil
	case v.Number != nil:
		return *v.Number, nil
	}
	return nil, nil
}

// IsZero 没有设置值
func (v Value) IsZero() bool { return !v.Voltage && v.Number == nil }

// resolve 得到元件参数，nil 表示使用元件默认值
func (v Value) resolve(voltage float64) any {
	switch {
	case v.Voltage:
		return voltage
	case v.Number != nil:
		return *v.Number
	}
	return nil
}

// Load 读取配置，补全默认值并检查
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked 读取配置，不检查
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse 解析 YAML 内容
func Parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal 输出 YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyDefaults 未设置的参数使用默认值，没有电路时使用默认电路
func (c *Config) ApplyDefaults() {
	if c.Steps == 0 {
		c.Steps = types.DefaultSteps
	}
	if c.Lines == 0 {
		c.Lines = types.DefaultLines
	}
	if c.TimeStep == 0 {
		c.TimeStep = types.DefaultTimeStep
	}
	if c.Voltage == 0 {
		c.Voltage = types.DefaultVoltage
	}
	if len(c.Circuits) == 0 {
		c.Circuits = DefaultCircuits()
	}
}

// Validate 检查配置
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps 必须大于 0: %d", c.Steps)
	}
	if c.Lines < 0 {
		return fmt.Errorf("lines 不能为负数: %d", c.Lines)
	}
	if err := eletime.CheckTimeStep(c.TimeStep); err != nil {
		return fmt.Errorf("time_step: %w", err)
	}
	if len(c.Circuits) == 0 {
		return errors.New("没有电路")
	}
	for i := range c.Circuits {
		if err := c.Circuits[i].Validate(); err != nil {
			return fmt.Errorf("电路 %d (%s): %w", i, c.Circuits[i].Name, err)
		}
	}
	return nil
}

// nodeNames 连接点名称，未声明时按引脚出现顺序
func (cc *CircuitConfig) nodeNames() []string {
	if len(cc.Nodes) > 0 {
		return cc.Nodes
	}
	var out []string
	seen := make(map[string]bool)
	for _, comp := range cc.Components {
		for _, pin := range comp.Pins {
			if !seen[pin] {
				seen[pin] = true
				out = append(out, pin)
			}
		}
	}
	return out
}

// Validate 检查电路拓扑
func (cc *CircuitConfig) Validate() error {
	nodes := make(map[string]bool)
	for _, name := range cc.nodeNames() {
		if name == "" {
			return errors.New("连接点名称为空")
		}
		if nodes[name] {
			return fmt.Errorf("连接点重复: %s", name)
		}
		nodes[name] = true
	}
	names := make(map[string]bool)
	for _, comp := range cc.Components {
		if comp.Name == "" {
			return errors.New("元件名称为空")
		}
		if names[comp.Name] {
			return fmt.Errorf("元件重复: %s", comp.Name)
		}
		names[comp.Name] = true
		t, ok := element.LookupType(comp.Type)
		if !ok {
			return fmt.Errorf("元件 %s: %w '%s'", comp.Name, types.ErrUnknownElement, comp.Type)
		}
		if len(comp.Pins) != t.PinNum() {
			return fmt.Errorf("元件 %s 引脚数量错误。需要 %d，得到 %d", comp.Name, t.PinNum(), len(comp.Pins))
		}
		for _, pin := range comp.Pins {
			if !nodes[pin] {
				return fmt.Errorf("元件 %s 连接了未声明的连接点 %s", comp.Name, pin)
			}
		}
		if comp.Value.Number != nil && *comp.Value.Number <= 0 {
			return fmt.Errorf("元件 %s 的值必须大于 0: %v", comp.Name, *comp.Value.Number)
		}
	}
	return nil
}

// Build 创建电路，voltage 替换值为 voltage 的元件参数
func (cc *CircuitConfig) Build(voltage float64) (*chargesim.Circuit, error) {
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	nodes := types.NewNodes()
	ids := make(map[string]types.NodeID)
	for _, name := range cc.nodeNames() {
		ids[name] = nodes.AddNode(name)
	}
	cir := chargesim.NewCircuit(nodes)
	for _, comp := range cc.Components {
		pins := make([]types.NodeID, len(comp.Pins))
		for i, pin := range comp.Pins {
			pins[i] = ids[pin]
		}
		ele, err := element.NewElementByName(comp.Type, comp.Name, pins, comp.Value.resolve(voltage))
		if err != nil {
			return nil, err
		}
		cir.AddComponent(ele)
	}
	return cir, nil
}

// Build 按配置创建电路并设置步长
func (c *Config) Build(i int) (*chargesim.Circuit, error) {
	if i < 0 || i >= len(c.Circuits) {
		return nil, fmt.Errorf("电路 %d 不存在", i)
	}
	cir, err := c.Circuits[i].Build(c.Voltage)
	if err != nil {
		return nil, err
	}
	if err := cir.SetTimeStep(c.TimeStep); err != nil {
		return nil, err
	}
	return cir, nil
}
