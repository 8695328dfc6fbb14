package components

import "testing"

func TestCooldownComponent(t *testing.T) {
	c := NewCooldownComponent(1000)
	if !c.CanFire {
		t.Fatal("new cooldown should allow firing")
	}

	c.Trigger(200)
	tests := []struct {
		now  int64
		want bool
	}{
		{200, false},
		{700, false},
		{1199, false},
		{1200, true}, // 恰好满足冷却时长
	}
	for _, tt := range tests {
		c.Recover(tt.now)
		if c.CanFire != tt.want {
			t.Errorf("at %dms CanFire = %v, want %v", tt.now, c.CanFire, tt.want)
		}
	}
}

func TestLifetimeComponent(t *testing.T) {
	l := &LifetimeComponent{SpawnTime: 1500, Lifetime: 5000}
	if l.Expired(6499) {
		t.Error("should not expire before lifetime")
	}
	if !l.Expired(6500) {
		t.Error("should expire exactly at spawn+lifetime")
	}
}
