package types

import "fmt"

// NodeID 连接点在节点表中的索引。
type NodeID int

// Connection 连接点，导线的抽象。
// 导线没有电阻，只保存经过它的电荷（伏特）。
type Connection struct {
	charge float64
}

// Charge 当前电荷。
func (con *Connection) Charge() float64 { return con.charge }

// SetCharge 直接设置电荷。
func (con *Connection) SetCharge(c float64) { con.charge = c }

// IncreaseCharge 增加电荷，c 不能为负数。
func (con *Connection) IncreaseCharge(c float64) error {
	if c < 0 {
		return fmt.Errorf("%w: 增加的电荷不能为负数 %v", ErrInvalidArgument, c)
	}
	con.charge += c
	return nil
}

// DecreaseCharge 减少电荷，c 不能为负数且不能超过当前电荷。
func (con *Connection) DecreaseCharge(c float64) error {
	if c < 0 {
		return fmt.Errorf("%w: 减少的电荷不能为负数 %v", ErrInvalidArgument, c)
	}
	if c > con.charge {
		return fmt.Errorf("%w: 减少的电荷 %v 超过当前电荷 %v", ErrInvalidArgument, c, con.charge)
	}
	con.charge -= c
	return nil
}
