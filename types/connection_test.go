package types

import (
	"errors"
	"testing"
)

func TestConnection(t *testing.T) {
	var p Connection
	if p.Charge() != 0 {
		t.Fatalf("初始电荷不正确: 期望 0, 实际 %v", p.Charge())
	}

	// 设置电荷
	c := 12.5
	p.SetCharge(c)
	if p.Charge() != c {
		t.Errorf("电荷不正确: 期望 %v, 实际 %v", c, p.Charge())
	}
	p.SetCharge(c + 1)
	if p.Charge() != c+1 {
		t.Errorf("电荷不正确: 期望 %v, 实际 %v", c+1, p.Charge())
	}
}

func TestConnectionIncrease(t *testing.T) {
	var p Connection
	if err := p.IncreaseCharge(2.5); err != nil {
		t.Fatalf("增加电荷失败: %s", err)
	}
	if err := p.IncreaseCharge(0); err != nil {
		t.Fatalf("增加零电荷失败: %s", err)
	}
	if p.Charge() != 2.5 {
		t.Errorf("电荷不正确: 期望 2.5, 实际 %v", p.Charge())
	}
	if err := p.IncreaseCharge(-0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("负数增加应失败: 实际 %v", err)
	}
	if p.Charge() != 2.5 {
		t.Errorf("失败后电荷被修改: 实际 %v", p.Charge())
	}
}

func TestConnectionDecrease(t *testing.T) {
	var p Connection
	p.SetCharge(10)
	for _, tt := range []struct {
		name   string
		amount float64
		ok     bool
		want   float64
	}{
		{"部分取出", 4, true, 6},
		{"负数", -1, false, 6},
		{"超额", 6.5, false, 6},
		{"全部取出", 6, true, 0},
		{"空节点", 0.1, false, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := p.DecreaseCharge(tt.amount)
			if tt.ok && err != nil {
				t.Fatalf("减少电荷失败: %s", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("期望 ErrInvalidArgument, 实际 %v", err)
			}
			if p.Charge() != tt.want {
				t.Errorf("电荷不正确: 期望 %v, 实际 %v", tt.want, p.Charge())
			}
		})
	}
}
