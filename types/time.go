package types

// Time 仿真时间接口
type Time interface {
	TimeStep() float64 // 时间步长 Δt
	Time() float64     // 当前仿真时间
	Steps() int        // 已完成步数
}
