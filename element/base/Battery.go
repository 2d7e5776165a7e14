package base

import (
	"chargesim/element"
	"chargesim/types"
)

// BatteryType 定义元件
var BatteryType element.NodeType = element.AddElement(0, &Battery{
	&element.Config{
		Name:      "b",
		Title:     "Battery",
		Pin:       []string{"b+", "b-"},
		ValueInit: []any{float64(24)}, // 0:电压
		ValueName: []string{"Voltage"},
	},
})

// Battery 理想电池，永不耗尽，没有内阻
type Battery struct{ *element.Config }

// NewBattery 创建电池，正极接 a，负极接 b
func NewBattery(name string, voltage float64, a, b types.NodeID) element.NodeFace {
	return element.NewElementValue(BatteryType, name, []types.NodeID{a, b}, voltage)
}

// Reset 电池电压固定为源电压
func (bat Battery) Reset(value element.NodeFace) {
	bat.Config.Reset(value)
	value.SetVoltage(value.GetFloat64(0))
}

// Step 正极电荷设为电池电压，负极清零
func (Battery) Step(nodes *types.Nodes, time types.Time, value element.NodeFace) error {
	pos, err := nodes.Lookup(value.GetNodes(0))
	if err != nil {
		return err
	}
	neg, err := nodes.Lookup(value.GetNodes(1))
	if err != nil {
		return err
	}
	pos.SetCharge(value.GetFloat64(0))
	neg.SetCharge(0)
	value.SetVoltage(value.GetFloat64(0))
	return nil
}

// UpdateCurrent 没有内阻模型，电流始终为 0
func (Battery) UpdateCurrent(time types.Time, value element.NodeFace) {
	value.SetCurrent(0)
}
