package types

import (
	"errors"
	"fmt"
)

// 仿真错误定义
var (
	// ErrInvalidArgument 电荷操作参数错误（负数增量或超额取出）。
	ErrInvalidArgument = errors.New("参数无效")
	// ErrInvalidTimeStep 时间步长必须为正的有限值。
	ErrInvalidTimeStep = errors.New("时间步长无效")
	// ErrUnknownElement 未注册的元件类型。
	ErrUnknownElement = errors.New("未知元件类型")
)

// StepError 记录失败发生的步数和元件
type StepError struct {
	Step    int    // 失败时的步数（0 起）
	Element string // 元件名称
	Err     error  // 原始错误
}

func (e *StepError) Error() string {
	return fmt.Sprintf("第 %d 步元件 %s 失败: %v", e.Step, e.Element, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
