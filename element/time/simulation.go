package time

import (
	"chargesim/element"
	"chargesim/types"
)

// Tick 推进一个步长：按列表顺序执行所有元件，成功后推进时间
func Tick(ts *TimeStep, nodes *types.Nodes, circuitElements []element.NodeFace) error {
	if err := element.CallMark(element.MarkStep, nodes, ts, circuitElements); err != nil {
		return err
	}
	ts.Advance()
	return nil
}

// TransientSimulation 执行 steps 个步长的瞬态仿真
// 参数：
//
//	ts: 仿真时钟
//	nodes: 连接点表
//	circuitElements: 电路元件列表，顺序即执行顺序
//	steps: 步数
//	call: 每步成功后的回调函数，接收已完成的步数，可以为 nil
func TransientSimulation(ts *TimeStep, nodes *types.Nodes, circuitElements []element.NodeFace, steps int, call func(step int)) error {
	for range steps {
		if err := Tick(ts, nodes, circuitElements); err != nil {
			return err
		}
		if call != nil {
			call(ts.Steps())
		}
	}
	return nil
}
