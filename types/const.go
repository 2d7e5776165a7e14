package types

// 默认连接常量定义
const (
	ElementUnlinkedNodeID NodeID = -1 // 引脚未连接标记
)

// 默认参数常量定义
var (
	DefaultTimeStep = 0.01   // 默认时间步长
	DefaultSteps    = 200000 // 默认仿真步数
	DefaultLines    = 10     // 默认输出行数
	DefaultVoltage  = 24.0   // 默认电源电压
)
