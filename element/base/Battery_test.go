package base

import (
	"testing"

	"chargesim/element"
	"chargesim/element/time"
	"chargesim/types"
)

func TestBattery(t *testing.T) {
	nodes := types.NewNodes()
	p, n := nodes.AddNode("P"), nodes.AddNode("N")
	nodes.Connection(p).SetCharge(3)
	nodes.Connection(n).SetCharge(7)

	bat := NewBattery("Bat", 24, p, n)
	if bat.GetName() != "Bat" || bat.Type() != BatteryType {
		t.Fatalf("电池创建不正确: %s %v", bat.GetName(), bat.Type())
	}
	if bat.GetVoltage() != 24 {
		t.Errorf("电池初始电压不正确: 期望 24, 实际 %v", bat.GetVoltage())
	}

	ts, err := time.NewTimeStep(0.01)
	if err != nil {
		t.Fatalf("创建仿真时间失败 %s", err)
	}
	for step := range 5 {
		if err := time.Tick(ts, nodes, []element.NodeFace{bat}); err != nil {
			t.Fatalf("第 %d 步失败: %s", step, err)
		}
		if got := nodes.Connection(p).Charge(); got != 24 {
			t.Errorf("正极电荷不正确: 期望 24, 实际 %v", got)
		}
		if got := nodes.Connection(n).Charge(); got != 0 {
			t.Errorf("负极电荷不正确: 期望 0, 实际 %v", got)
		}
		if bat.GetCurrent() != 0 {
			t.Errorf("电池电流不正确: 期望 0, 实际 %v", bat.GetCurrent())
		}
		if bat.GetVoltage() != 24 {
			t.Errorf("电池电压不正确: 期望 24, 实际 %v", bat.GetVoltage())
		}
	}
}

func TestBatteryMissingNode(t *testing.T) {
	nodes := types.NewNodes()
	p := nodes.AddNode("P")
	bat := NewBattery("Bat", 9, p, types.NodeID(5))
	ts, _ := time.NewTimeStep(0.01)
	if err := time.Tick(ts, nodes, []element.NodeFace{bat}); err == nil {
		t.Fatalf("连接不存在的节点应失败")
	}
	if ts.Steps() != 0 {
		t.Errorf("失败的步不应推进时间: %d", ts.Steps())
	}
}
