package mna

// NodeID 方程中的节点索引，与连接点索引不同，地节点不参与方程。
type NodeID int

// VoltageID 电压源在方程中的索引，对应一个电流未知量。
type VoltageID int

// Gnd 表示电路的接地节点，其电位为零。
const Gnd NodeID = -1

// MNA (Modified Nodal Analysis) 接口定义了构建电路方程（Ax=Z）所需的加盖操作。
type MNA interface {
	// GetNodeNum 获取电路中独立节点的数量（不包括地节点）。
	GetNodeNum() int

	// GetVoltageSourcesNum 获取电路中电压源的数量，这决定了MNA矩阵的扩展维度。
	GetVoltageSourcesNum() int

	// StampMatrix 将一个值加到矩阵A的(i,j)元素上。地节点相关的操作将被忽略。
	StampMatrix(i, j NodeID, value float64)

	// StampRightSide 将一个值加到向量Z的第i个元素上。地节点相关的操作将被忽略。
	StampRightSide(i NodeID, value float64)

	// StampImpedance 为阻抗元件（如电阻）添加MNA加盖。
	// 数学模型: G=1/r，在矩阵A的对角元(n1,n1)和(n2,n2)加上G，非对角元(n1,n2)和(n2,n1)减去G。
	StampImpedance(n1, n2 NodeID, r float64)

	// StampAdmittance 为电导元件添加MNA加盖，直接将其电导值g贡献到MNA矩阵A中。
	StampAdmittance(n1, n2 NodeID, g float64)

	// StampVoltageSource 为独立电压源添加MNA加盖。
	// 数学模型: 引入电流I(vs)作为新变量，建立约束 V(n1)-V(n2)=v。
	StampVoltageSource(n1, n2 NodeID, vs VoltageID, v float64)
}
