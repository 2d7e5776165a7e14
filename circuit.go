package chargesim

import (
	"fmt"
	"io"
	"slices"

	"chargesim/element"
	eletime "chargesim/element/time"
	"chargesim/mna"
	"chargesim/types"

	_ "chargesim/element/base"
)

// Debug 调试接口，在设置时和每一步完成后被调用
type Debug interface {
	Init(cir *Circuit)
	Update(cir *Circuit)
}

// Circuit 电路模拟器
// 电路独占元件，连接点属于节点表，电路只引用节点表。
type Circuit struct {
	*types.Nodes                    // 连接点表
	list         []element.NodeFace // 元件列表，插入顺序即仿真顺序和输出顺序
	time         *eletime.TimeStep  // 仿真时钟
	debug        Debug              // 调试记录
}

// NewCircuit 初始化，nodes 为空时创建新的节点表
func NewCircuit(nodes *types.Nodes, list ...element.NodeFace) *Circuit {
	if nodes == nil {
		nodes = types.NewNodes()
	}
	ts, _ := eletime.NewTimeStep(types.DefaultTimeStep)
	cir := &Circuit{Nodes: nodes, time: ts}
	for _, ele := range list {
		cir.AddComponent(ele)
	}
	return cir
}

// AddComponent 添加元件到列表末尾
func (cir *Circuit) AddComponent(ele element.NodeFace) {
	cir.list = append(cir.list, ele)
	for i := range ele.Config().PinNum() {
		cir.Link(ele.GetNodes(i), ele.GetName())
	}
}

// List 元件列表副本
func (cir *Circuit) List() []element.NodeFace {
	return slices.Clone(cir.list)
}

// Time 仿真时间
func (cir *Circuit) Time() types.Time { return cir.time }

// TimeStep 时间步长
func (cir *Circuit) TimeStep() float64 { return cir.time.TimeStep() }

// SetTimeStep 设置时间步长，应在仿真开始前设置
func (cir *Circuit) SetTimeStep(dt float64) error {
	return cir.time.SetTimeStep(dt)
}

// SetDebug 设置调试记录
func (cir *Circuit) SetDebug(debug Debug) {
	cir.debug = debug
	if debug != nil {
		debug.Init(cir)
	}
}

// Step 按插入顺序执行所有元件一次
// 失败时当前步停止，已经执行的元件不回滚
func (cir *Circuit) Step() error {
	if err := eletime.Tick(cir.time, cir.Nodes, cir.list); err != nil {
		return err
	}
	if cir.debug != nil {
		cir.debug.Update(cir)
	}
	return nil
}

// Reset 元件恢复初始状态，连接点电荷清零，时间归零
func (cir *Circuit) Reset() {
	element.CallMark(element.MarkReset, cir.Nodes, cir.time, cir.list)
	cir.Nodes.Reset()
	cir.time.Reset()
}

// Close 释放所有元件，连接点不受影响
func (cir *Circuit) Close() {
	for _, ele := range cir.list {
		for i := range ele.Config().PinNum() {
			cir.Unlink(ele.GetNodes(i), ele.GetName())
		}
	}
	cir.list = nil
	cir.debug = nil
}

// SteadyState 求解直流稳态，用于和步进结果比较
func (cir *Circuit) SteadyState() (*mna.Solution, error) {
	return mna.SteadyState(cir.Nodes, cir.list)
}

// PrintTitles 输出表头：元件名称和 Volt/Curr
func (cir *Circuit) PrintTitles(w io.Writer) error {
	for _, ele := range cir.list {
		if _, err := fmt.Fprintf(w, "%12s", ele.GetName()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for range cir.list {
		if _, err := fmt.Fprintf(w, "%6s%6s", "Volt", "Curr"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// StepPrint 输出一行各元件的电压和电流
func (cir *Circuit) StepPrint(w io.Writer) error {
	for _, ele := range cir.list {
		if _, err := fmt.Fprintf(w, "%6.2f%6.2f", ele.GetVoltage(), ele.GetCurrent()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Simulate 进行仿真
// 输出表头后执行 steps 步，每 steps/lines 步输出一行；lines 不大于 0 时不输出
func (cir *Circuit) Simulate(steps, lines int, w io.Writer) error {
	printStep := 0
	if lines > 0 && w != nil {
		printStep = max(steps/lines, 1)
		if err := cir.PrintTitles(w); err != nil {
			return err
		}
	}
	for step := range steps {
		if err := cir.Step(); err != nil {
			return err
		}
		if printStep > 0 && (step+1)%printStep == 0 {
			if err := cir.StepPrint(w); err != nil {
				return err
			}
		}
	}
	return nil
}
