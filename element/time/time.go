package time

import (
	"fmt"
	"math"

	"chargesim/types"
)

// TimeStep 固定步长的仿真时钟
type TimeStep struct {
	step  float64 // 时间步长
	time  float64 // 当前时间
	steps int     // 已完成步数
}

// NewTimeStep 创建仿真时钟，步长必须为正的有限值
func NewTimeStep(dt float64) (*TimeStep, error) {
	if err := CheckTimeStep(dt); err != nil {
		return nil, err
	}
	return &TimeStep{step: dt}, nil
}

// CheckTimeStep 检查步长
func CheckTimeStep(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("%w: %v", types.ErrInvalidTimeStep, dt)
	}
	return nil
}

// TimeStep 时间步长
func (ts *TimeStep) TimeStep() float64 { return ts.step }

// Time 当前仿真时间
func (ts *TimeStep) Time() float64 { return ts.time }

// Steps 已完成步数
func (ts *TimeStep) Steps() int { return ts.steps }

// SetTimeStep 修改步长，已经推进的时间不变
func (ts *TimeStep) SetTimeStep(dt float64) error {
	if err := CheckTimeStep(dt); err != nil {
		return err
	}
	ts.step = dt
	return nil
}

// Advance 推进一个步长
func (ts *TimeStep) Advance() {
	ts.steps++
	ts.time += ts.step
}

// Reset 时间归零
func (ts *TimeStep) Reset() {
	ts.steps = 0
	ts.time = 0
}
