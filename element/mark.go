package element

import (
	"log"

	"chargesim/types"
)

// Mark 用于区分调用阶段的标记
type Mark uint8

// 接口回调类型
const (
	MarkReset         Mark = iota // 元件重置
	MarkStep                      // 执行仿真步长并计算电流
	MarkUpdateCurrent             // 只计算电流
)

// CallMark 按列表顺序统一调用。
// 元件共享连接点，后面的元件看到的是前面元件在同一步中修改后的电荷。
// 遇到错误立即停止，已经执行的元件不回滚。
func CallMark(mark Mark, nodes *types.Nodes, time types.Time, value []NodeFace) error {
	switch mark {
	case MarkReset:
		for _, v := range value {
			ElementList[v.Type()].Reset(v)
		}
	case MarkStep:
		for _, v := range value {
			ele := ElementList[v.Type()]
			if err := ele.Step(nodes, time, v); err != nil {
				return &types.StepError{Step: time.Steps(), Element: v.GetName(), Err: err}
			}
			ele.UpdateCurrent(time, v)
		}
	case MarkUpdateCurrent:
		for _, v := range value {
			ElementList[v.Type()].UpdateCurrent(time, v)
		}
	default:
		log.Fatalf("未知 CallMark 操作: %d", mark)
	}
	return nil
}
