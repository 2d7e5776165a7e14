package mna

import (
	"gonum.org/v1/gonum/mat"
)

// Gmin 每个节点到地的最小电导，避免只通过电容连接的节点使矩阵奇异
const Gmin = 1e-12

// Dense 稠密矩阵实现
type Dense struct {
	NodesNum          int           // 节点数量（不含地）
	VoltageSourcesNum int           // 电压源数量
	A                 *mat.Dense    // 求解矩阵
	Z                 *mat.VecDense // 已知向量
}

// NewMNA 创建求解器
func NewMNA(nodesNum, voltageSourcesNum int) *Dense {
	n := nodesNum + voltageSourcesNum
	return &Dense{
		NodesNum:          nodesNum,
		VoltageSourcesNum: voltageSourcesNum,
		A:                 mat.NewDense(n, n, nil),
		Z:                 mat.NewVecDense(n, nil),
	}
}

func (m *Dense) GetNodeNum() int           { return m.NodesNum }
func (m *Dense) GetVoltageSourcesNum() int { return m.VoltageSourcesNum }

func (m *Dense) StampMatrix(i, j NodeID, value float64) {
	if i == Gnd || j == Gnd {
		return
	}
	m.A.Set(int(i), int(j), m.A.At(int(i), int(j))+value)
}

func (m *Dense) StampRightSide(i NodeID, value float64) {
	if i == Gnd {
		return
	}
	m.Z.SetVec(int(i), m.Z.AtVec(int(i))+value)
}

func (m *Dense) StampImpedance(n1, n2 NodeID, r float64) {
	m.StampAdmittance(n1, n2, 1/r)
}

func (m *Dense) StampAdmittance(n1, n2 NodeID, g float64) {
	m.StampMatrix(n1, n1, g)
	m.StampMatrix(n2, n2, g)
	m.StampMatrix(n1, n2, -g)
	m.StampMatrix(n2, n1, -g)
}

func (m *Dense) StampVoltageSource(n1, n2 NodeID, vs VoltageID, v float64) {
	vsRow := NodeID(int(vs) + m.NodesNum) // 电压源对应矩阵行（扩展未知量）
	// 节点电流方程：I(vs) 对 n1/n2 的贡献
	m.StampMatrix(n1, vsRow, 1.0)
	m.StampMatrix(n2, vsRow, -1.0)
	// 电压源约束方程：V(n1) - V(n2) = v
	m.StampMatrix(vsRow, n1, 1.0)
	m.StampMatrix(vsRow, n2, -1.0)
	m.StampRightSide(vsRow, v)
}

// StampGmin 所有节点对地加最小电导
func (m *Dense) StampGmin() {
	for i := range m.NodesNum {
		m.StampMatrix(NodeID(i), NodeID(i), Gmin)
	}
}

// Solve 求解 Ax=Z，病态矩阵返回 mat.Condition 错误但结果仍然可用
func (m *Dense) Solve() (*mat.VecDense, error) {
	var x mat.VecDense
	err := x.SolveVec(m.A, m.Z)
	return &x, err
}
var _ MNA = (*Dense)(nil)
