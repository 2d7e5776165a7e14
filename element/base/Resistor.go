package base

import (
	"chargesim/element"
	"chargesim/types"
)

// ResistorType 定义元件
var ResistorType element.NodeType = element.AddElement(1, &Resistor{
	&element.Config{
		Name:      "r",
		Title:     "Resistor",
		Pin:       []string{"r1", "r2"},
		ValueInit: []any{float64(10000)}, // 0:电阻 默认10kΩ
		ValueName: []string{"Resistance"},
	},
})

// Resistor 电阻元件结构体
// 每一步按 电压/电阻*Δt 从高电荷端向低电荷端移动电荷
type Resistor struct{ *element.Config }

// NewResistor 创建电阻
func NewResistor(name string, resistance float64, a, b types.NodeID) element.NodeFace {
	return element.NewElementValue(ResistorType, name, []types.NodeID{a, b}, resistance)
}

// Step 先按当前两端电荷计算电压，移动电荷后重新计算电压
// 电阻为 0 时不做保护：有电压差时取出 Inf 电荷失败，两端相等时电荷变为 NaN
func (Resistor) Step(nodes *types.Nodes, time types.Time, value element.NodeFace) error {
	if err := value.UpdateVoltage(nodes); err != nil {
		return err
	}
	amount := value.GetVoltage() / value.GetFloat64(0) * time.TimeStep()
	if err := value.UpdateConnectionCharges(nodes, amount); err != nil {
		return err
	}
	return value.UpdateVoltage(nodes)
}

// UpdateCurrent 电流 = 电压 / 电阻
func (Resistor) UpdateCurrent(time types.Time, value element.NodeFace) {
	value.SetCurrent(value.GetVoltage() / value.GetFloat64(0))
}
