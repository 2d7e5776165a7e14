package base

import (
	"chargesim/element"
	"chargesim/types"
)

// CapacitorType 定义元件
var CapacitorType element.NodeType = element.AddElement(2, &Capacitor{
	&element.Config{
		Name:      "c",
		Title:     "Capacitor",
		Pin:       []string{"c1", "c2"},
		ValueInit: []any{float64(1e-6), 0.0}, // 0:C 1:存储电荷
		ValueName: []string{"Capacitance", "Charge"},
		OrigValue: []int{1},
	},
})

// Capacitor 电容
type Capacitor struct{ *element.Config }

// NewCapacitor 创建电容
func NewCapacitor(name string, capacitance float64, a, b types.NodeID) element.NodeFace {
	return element.NewElementValue(CapacitorType, name, []types.NodeID{a, b}, capacitance)
}

// Stored 电容累计存储的电荷
func Stored(value element.NodeFace) float64 { return value.GetFloat64(1) }

// Step 移动 C*(V-Q)*Δt 的电荷并累加到存储电荷
// 结果为负时电容放电，电荷反向移动
func (Capacitor) Step(nodes *types.Nodes, time types.Time, value element.NodeFace) error {
	if err := value.UpdateVoltage(nodes); err != nil {
		return err
	}
	c, stored := value.GetFloat64(0), value.GetFloat64(1)
	amount := c * (value.GetVoltage() - stored) * time.TimeStep()
	var err error
	if amount < 0 {
		err = value.DischargeConnectionCharges(nodes, -amount)
	} else {
		err = value.UpdateConnectionCharges(nodes, amount)
	}
	if err != nil {
		return err
	}
	value.SetFloat64(1, stored+amount)
	return value.UpdateVoltage(nodes)
}

// UpdateCurrent 电流 = C*(V-Q)
func (Capacitor) UpdateCurrent(time types.Time, value element.NodeFace) {
	value.SetCurrent(value.GetFloat64(0) * (value.GetVoltage() - value.GetFloat64(1)))
}
