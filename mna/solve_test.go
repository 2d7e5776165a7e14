package mna

import (
	"errors"
	"math"
	"testing"

	"chargesim/element"
	"chargesim/element/base"
	"chargesim/types"
)

func TestSteadyState(t *testing.T) {
	nodes := types.NewNodes()
	ids := nodes.AddNodes("P", "N", "R124", "R23")
	p, n, r124, r23 := ids[0], ids[1], ids[2], ids[3]
	ele := []element.NodeFace{
		base.NewBattery("Bat", 24, p, n),
		base.NewResistor("R1", 6, p, r124),
		base.NewResistor("R2", 4, r124, r23),
		base.NewResistor("R3", 8, r23, n),
		base.NewResistor("R4", 12, r124, n),
	}
	sol, err := SteadyState(nodes, ele)
	if err != nil {
		t.Fatalf("稳态求解失败: %s", err)
	}
	if sol.Ground != n {
		t.Errorf("参考地不正确: 期望 %d, 实际 %d", n, sol.Ground)
	}
	for i, want := range []struct{ v, i float64 }{{24, 2}, {12, 2}, {4, 1}, {8, 1}, {12, 1}} {
		if got := sol.ElementVoltage(ele[i]); math.Abs(got-want.v) > 1e-6 {
			t.Errorf("%s 电压不正确: 期望 %v, 实际 %v", ele[i].GetName(), want.v, got)
		}
		if got := sol.ElementCurrent(ele[i]); math.Abs(got-want.i) > 1e-6 {
			t.Errorf("%s 电流不正确: 期望 %v, 实际 %v", ele[i].GetName(), want.i, got)
		}
	}
}

func TestSteadyStateCapacitor(t *testing.T) {
	nodes := types.NewNodes()
	ids := nodes.AddNodes("P", "N", "L", "R")
	p, n, l, r := ids[0], ids[1], ids[2], ids[3]
	ele := []element.NodeFace{
		base.NewBattery("Bat", 24, p, n),
		base.NewResistor("R1", 150, p, l),
		base.NewResistor("R2", 50, p, r),
		base.NewCapacitor("C3", 1.0, l, r),
		base.NewResistor("R4", 300, l, n),
		base.NewCapacitor("C5", 0.75, r, n),
	}
	sol, err := SteadyState(nodes, ele)
	if err != nil {
		t.Fatalf("稳态求解失败: %s", err)
	}
	// 电容开路：L 由 R1/R4 分压，R 经 R2 接到正极
	if got := sol.Voltage(l); math.Abs(got-16) > 1e-6 {
		t.Errorf("L 电压不正确: 期望 16, 实际 %v", got)
	}
	if got := sol.Voltage(r); math.Abs(got-24) > 1e-6 {
		t.Errorf("R 电压不正确: 期望 24, 实际 %v", got)
	}
	if got := sol.ElementCurrent(ele[3]); got != 0 {
		t.Errorf("电容电流应为 0: 实际 %v", got)
	}
}

func TestSteadyStateErrors(t *testing.T) {
	nodes := types.NewNodes()
	a, b := nodes.AddNode("A"), nodes.AddNode("B")
	if _, err := SteadyState(nodes, []element.NodeFace{base.NewResistor("R1", 1, a, b)}); !errors.Is(err, ErrNoSource) {
		t.Errorf("没有电源应失败: 实际 %v", err)
	}
	ele := []element.NodeFace{
		base.NewBattery("Bat", 5, a, b),
		base.NewResistor("R0", 0, a, b),
	}
	if _, err := SteadyState(nodes, ele); !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("零电阻应失败: 实际 %v", err)
	}
}
