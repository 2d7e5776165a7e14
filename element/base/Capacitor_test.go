package base

import (
	"math"
	"testing"

	"chargesim/element"
	"chargesim/element/time"
	"chargesim/types"
)

func TestCapacitor(t *testing.T) {
	nodes := types.NewNodes()
	p, n := nodes.AddNode("P"), nodes.AddNode("N")
	ele := []element.NodeFace{
		NewBattery("Bat", 10, p, n),
		NewCapacitor("C1", 1, p, n),
	}
	ts, err := time.NewTimeStep(0.001)
	if err != nil {
		t.Fatalf("创建仿真时间失败 %s", err)
	}
	if err := time.Tick(ts, nodes, ele); err != nil {
		t.Fatalf("仿真失败 %s", err)
	}
	// 第一步电流约为 C*V0
	if got, want := ele[1].GetCurrent(), 10.0; math.Abs(got-want)/want > 0.01 {
		t.Errorf("电容电流不正确: 期望 %v, 实际 %v", want, got)
	}
	if got := Stored(ele[1]); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("电容存储电荷不正确: 期望 0.01, 实际 %v", got)
	}
}

func TestCapacitorCharging(t *testing.T) {
	nodes := types.NewNodes()
	p, n := nodes.AddNode("P"), nodes.AddNode("N")
	ele := []element.NodeFace{
		NewBattery("Bat", 10, p, n),
		NewCapacitor("C1", 1, p, n),
	}
	ts, _ := time.NewTimeStep(0.01)
	last := math.Inf(1)
	err := time.TransientSimulation(ts, nodes, ele, 2000, func(step int) {
		// 充电过程中电流单调减小
		if cur := ele[1].GetCurrent(); cur > last+1e-12 {
			t.Errorf("第 %d 步电流增大: %v > %v", step, cur, last)
		}
		last = ele[1].GetCurrent()
	})
	if err != nil {
		t.Fatalf("仿真失败 %s", err)
	}
	if got := Stored(ele[1]); math.Abs(got-10) > 1e-3 {
		t.Errorf("电容存储电荷应接近电源电压: 期望 10, 实际 %v", got)
	}
	if got := ele[1].GetCurrent(); math.Abs(got) > 1e-3 {
		t.Errorf("电容电流应接近 0: 实际 %v", got)
	}
}

func TestCapacitorDischarge(t *testing.T) {
	nodes := types.NewNodes()
	a, b := nodes.AddNode("A"), nodes.AddNode("B")
	nodes.Connection(a).SetCharge(4)
	nodes.Connection(b).SetCharge(1)
	c := NewCapacitor("C1", 1, a, b)
	c.SetFloat64(1, 5)

	ts, _ := time.NewTimeStep(0.1)
	if err := time.Tick(ts, nodes, []element.NodeFace{c}); err != nil {
		t.Fatalf("仿真失败 %s", err)
	}
	// 1*(3-5)*0.1 = -0.2，电荷从低电荷端移到高电荷端
	if got := nodes.Connection(a).Charge(); math.Abs(got-4.2) > 1e-9 {
		t.Errorf("A端电荷不正确: 期望 4.2, 实际 %v", got)
	}
	if got := nodes.Connection(b).Charge(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("B端电荷不正确: 期望 0.8, 实际 %v", got)
	}
	if got := Stored(c); math.Abs(got-4.8) > 1e-9 {
		t.Errorf("存储电荷不正确: 期望 4.8, 实际 %v", got)
	}
	if got := c.GetCurrent(); math.Abs(got-(-1.4)) > 1e-9 {
		t.Errorf("电容电流不正确: 期望 -1.4, 实际 %v", got)
	}

	// 重置后存储电荷归零
	element.CallMark(element.MarkReset, nodes, ts, []element.NodeFace{c})
	if Stored(c) != 0 || c.GetVoltage() != 0 || c.GetCurrent() != 0 {
		t.Errorf("重置不正确: Q=%v V=%v I=%v", Stored(c), c.GetVoltage(), c.GetCurrent())
	}
}
