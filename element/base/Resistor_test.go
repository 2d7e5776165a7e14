package base

import (
	"errors"
	"math"
	"testing"

	"chargesim/element"
	"chargesim/element/time"
	"chargesim/types"
)

func TestResistor(t *testing.T) {
	nodes := types.NewNodes()
	a, b := nodes.AddNode("A"), nodes.AddNode("B")
	nodes.Connection(a).SetCharge(10)

	res := NewResistor("R1", 5, a, b)
	ts, err := time.NewTimeStep(0.1)
	if err != nil {
		t.Fatalf("创建仿真时间失败 %s", err)
	}
	if err := time.Tick(ts, nodes, []element.NodeFace{res}); err != nil {
		t.Fatalf("仿真失败 %s", err)
	}

	// 移动电荷 10/5*0.1 = 0.2
	if got := nodes.Connection(a).Charge(); math.Abs(got-9.8) > 1e-9 {
		t.Errorf("A端电荷不正确: 期望 9.8, 实际 %v", got)
	}
	if got := nodes.Connection(b).Charge(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("B端电荷不正确: 期望 0.2, 实际 %v", got)
	}
	if got := res.GetVoltage(); math.Abs(got-9.6) > 1e-9 {
		t.Errorf("电阻电压不正确: 期望 9.6, 实际 %v", got)
	}
	if got := res.GetCurrent(); math.Abs(got-res.GetVoltage()/5) > 1e-12 {
		t.Errorf("电阻电流不正确: 期望 %v, 实际 %v", res.GetVoltage()/5, got)
	}
}

func TestResistorReverse(t *testing.T) {
	nodes := types.NewNodes()
	a, b := nodes.AddNode("A"), nodes.AddNode("B")
	nodes.Connection(b).SetCharge(8)

	res := NewResistor("R1", 4, a, b)
	ts, _ := time.NewTimeStep(0.5)
	if err := time.Tick(ts, nodes, []element.NodeFace{res}); err != nil {
		t.Fatalf("仿真失败 %s", err)
	}
	// 电荷从高电荷端 B 移到 A：8/4*0.5 = 1
	if got := nodes.Connection(a).Charge(); math.Abs(got-1) > 1e-9 {
		t.Errorf("A端电荷不正确: 期望 1, 实际 %v", got)
	}
	if got := nodes.Connection(b).Charge(); math.Abs(got-7) > 1e-9 {
		t.Errorf("B端电荷不正确: 期望 7, 实际 %v", got)
	}
}

func TestResistorOverdraw(t *testing.T) {
	nodes := types.NewNodes()
	a, b := nodes.AddNode("A"), nodes.AddNode("B")
	nodes.Connection(a).SetCharge(1)

	// 1/0.01*1 = 100 超过 A 端电荷
	res := NewResistor("R1", 0.01, a, b)
	ts, _ := time.NewTimeStep(1)
	err := time.Tick(ts, nodes, []element.NodeFace{res})
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("超额移动电荷应失败: 实际 %v", err)
	}
	var se *types.StepError
	if !errors.As(err, &se) || se.Element != "R1" || se.Step != 0 {
		t.Errorf("错误信息不正确: %v", err)
	}
	if got := nodes.Connection(a).Charge(); got != 1 {
		t.Errorf("失败后A端电荷被修改: %v", got)
	}
	if got := nodes.Connection(b).Charge(); got != 0 {
		t.Errorf("失败后B端电荷被修改: %v", got)
	}
}
