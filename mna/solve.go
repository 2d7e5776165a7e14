package mna

import (
	"errors"
	"fmt"
	"math"

	"chargesim/element"
	"chargesim/element/base"
	"chargesim/types"

	"gonum.org/v1/gonum/mat"
)

// ErrNoSource 电路中没有电池，无法确定参考地
var ErrNoSource = errors.New("电路中没有电源")

// Solution 直流稳态解
type Solution struct {
	Ground   types.NodeID                 // 参考地（第一个电池的负极）
	voltages []float64                    // 连接点电压
	sources  map[element.NodeFace]float64 // 电池电流
}

// SteadyState 求解直流稳态：电阻为电导，电池为理想电压源，电容开路。
// 参考地为第一个电池的负极。
func SteadyState(nodes *types.Nodes, list []element.NodeFace) (*Solution, error) {
	ground := types.ElementUnlinkedNodeID
	numSources := 0
	for _, ele := range list {
		if ele.Type() == base.BatteryType {
			if numSources == 0 {
				ground = ele.GetNodes(1)
			}
			numSources++
		}
	}
	if numSources == 0 {
		return nil, ErrNoSource
	}
	// 连接点索引映射到方程节点索引，地节点为 Gnd
	index := make([]NodeID, nodes.Len())
	n := 0
	for i := range index {
		if types.NodeID(i) == ground {
			index[i] = Gnd
			continue
		}
		index[i] = NodeID(n)
		n++
	}
	lookup := func(id types.NodeID) (NodeID, error) {
		if !nodes.Valid(id) {
			return Gnd, fmt.Errorf("%w: 连接点 %d 不存在", types.ErrInvalidArgument, id)
		}
		return index[id], nil
	}

	m := NewMNA(n, numSources)
	m.StampGmin()
	var vs VoltageID
	sources := make(map[element.NodeFace]VoltageID)
	for _, ele := range list {
		n1, err := lookup(ele.GetNodes(0))
		if err != nil {
			return nil, err
		}
		n2, err := lookup(ele.GetNodes(1))
		if err != nil {
			return nil, err
		}
		switch ele.Type() {
		case base.BatteryType:
			m.StampVoltageSource(n1, n2, vs, ele.GetFloat64(0))
			sources[ele] = vs
			vs++
		case base.ResistorType:
			r := ele.GetFloat64(0)
			if r <= 0 {
				return nil, fmt.Errorf("%w: 元件 %s 电阻必须大于 0", types.ErrInvalidArgument, ele.GetName())
			}
			m.StampImpedance(n1, n2, r)
		case base.CapacitorType:
			// 直流稳态下电容开路
		default:
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownElement, ele.Type())
		}
	}

	x, err := m.Solve()
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("稳态求解失败: %w", err)
		}
	}
	sol := &Solution{
		Ground:   ground,
		voltages: make([]float64, nodes.Len()),
		sources:  make(map[element.NodeFace]float64, len(sources)),
	}
	for i, row := range index {
		if row != Gnd {
			sol.voltages[i] = x.AtVec(int(row))
		}
	}
	for ele, id := range sources {
		sol.sources[ele] = math.Abs(x.AtVec(n + int(id)))
	}
	return sol, nil
}

// Voltage 连接点相对参考地的电压
func (sol *Solution) Voltage(id types.NodeID) float64 {
	if id < 0 || int(id) >= len(sol.voltages) {
		return 0
	}
	return sol.voltages[id]
}

// ElementVoltage 元件两端电压
func (sol *Solution) ElementVoltage(ele element.NodeFace) float64 {
	return math.Abs(sol.Voltage(ele.GetNodes(0)) - sol.Voltage(ele.GetNodes(1)))
}

// ElementCurrent 流过元件的电流，电容为 0，电池为电源电流
func (sol *Solution) ElementCurrent(ele element.NodeFace) float64 {
	switch ele.Type() {
	case base.BatteryType:
		return sol.sources[ele]
	case base.ResistorType:
		return sol.ElementVoltage(ele) / ele.GetFloat64(0)
	default:
		return 0
	}
}
