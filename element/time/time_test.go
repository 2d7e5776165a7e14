package time

import (
	"errors"
	"math"
	"testing"

	"chargesim/element"
	"chargesim/types"
)

func TestNewTimeStep(t *testing.T) {
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		if _, err := NewTimeStep(dt); !errors.Is(err, types.ErrInvalidTimeStep) {
			t.Errorf("步长 %v 应失败: 实际 %v", dt, err)
		}
	}
	ts, err := NewTimeStep(0.25)
	if err != nil {
		t.Fatalf("创建仿真时间失败 %s", err)
	}
	ts.Advance()
	ts.Advance()
	if ts.Steps() != 2 || ts.Time() != 0.5 {
		t.Errorf("时间推进不正确: 步数 %d 时间 %v", ts.Steps(), ts.Time())
	}
	if err := ts.SetTimeStep(-1); err == nil {
		t.Errorf("修改为负步长应失败")
	}
	ts.Reset()
	if ts.Steps() != 0 || ts.Time() != 0 || ts.TimeStep() != 0.25 {
		t.Errorf("重置不正确: %+v", ts)
	}
}

func TestTransientSimulationEmpty(t *testing.T) {
	ts, _ := NewTimeStep(0.01)
	var calls []int
	if err := TransientSimulation(ts, types.NewNodes(), []element.NodeFace{}, 3, func(step int) {
		calls = append(calls, step)
	}); err != nil {
		t.Fatalf("空电路仿真失败 %s", err)
	}
	if len(calls) != 3 || calls[2] != 3 {
		t.Errorf("回调次数不正确: %v", calls)
	}
}
