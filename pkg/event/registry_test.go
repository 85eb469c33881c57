package event

import "testing"

// target 测试用注册目标（注册表用指针身份区分目标）
type target struct{ name string }

// TestRegisterAndDispatch 测试注册后派发事件到达处理函数
func TestRegisterAndDispatch(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	var received *PointerEvent
	r.Register(TypePointerDown, tgt, func(e *PointerEvent) bool {
		received = e
		return false
	})

	e := &PointerEvent{Type: TypePointerDown, X: 10, Y: 20, Button: PrimaryButton}
	result := r.Dispatch(TypePointerDown, tgt, e)

	if received == nil {
		t.Fatal("Handler should receive the dispatched event")
	}
	if received.X != 10 || received.Y != 20 {
		t.Errorf("Event position = (%v, %v), want (10, 20)", received.X, received.Y)
	}
	if result {
		t.Error("Dispatch should return the handler's false")
	}
}

// TestDispatchNoHandler 测试无处理函数时派发返回 true（继续传播）
func TestDispatchNoHandler(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	if !r.Dispatch(TypePointerDown, tgt, &PointerEvent{Type: TypePointerDown}) {
		t.Error("Dispatch without a handler should return true")
	}
}

// TestRegisterNilGuards 测试 nil 目标或 nil 处理函数被忽略
func TestRegisterNilGuards(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	r.Register(TypePointerDown, nil, func(e *PointerEvent) bool { return false })
	r.Register(TypePointerDown, tgt, nil)

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (nil registrations ignored)", r.Len())
	}
}

// TestRegisterLastWins 测试同一目标重复注册时新处理函数生效
func TestRegisterLastWins(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	var first, second bool
	r.Register(TypePointerDown, tgt, func(e *PointerEvent) bool {
		first = true
		return false
	})
	r.Register(TypePointerDown, tgt, func(e *PointerEvent) bool {
		second = true
		return false
	})

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (re-register replaces)", r.Len())
	}

	r.Dispatch(TypePointerDown, tgt, &PointerEvent{Type: TypePointerDown})
	if first {
		t.Error("Old handler should not be invoked after re-register")
	}
	if !second {
		t.Error("New handler should be invoked after re-register")
	}
}

// TestRegisterKeepsOrderOnReplace 测试重复注册不改变目标的注册顺序位置
func TestRegisterKeepsOrderOnReplace(t *testing.T) {
	r := NewRegistry()
	a := &target{name: "a"}
	b := &target{name: "b"}

	r.Register(TypePointerDown, a, func(e *PointerEvent) bool { return false })
	r.Register(TypePointerDown, b, func(e *PointerEvent) bool { return false })
	r.Register(TypePointerDown, a, func(e *PointerEvent) bool { return false })

	targets := r.Targets(TypePointerDown)
	if len(targets) != 2 {
		t.Fatalf("Targets length = %d, want 2", len(targets))
	}
	if targets[0] != a || targets[1] != b {
		t.Error("Re-register should keep the original order position")
	}
}

// TestRelease 测试释放注册后派发不再到达
func TestRelease(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	var called bool
	r.Register(TypePointerDown, tgt, func(e *PointerEvent) bool {
		called = true
		return false
	})

	r.Release(TypePointerDown, tgt)

	if !r.Dispatch(TypePointerDown, tgt, &PointerEvent{Type: TypePointerDown}) {
		t.Error("Dispatch after release should return true")
	}
	if called {
		t.Error("Released handler should not be invoked")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}

	// 重复释放是安全的无操作
	r.Release(TypePointerDown, tgt)
	r.Release(TypePointerUp, tgt)
}

// TestReleaseTarget 测试按目标释放全部事件类型的注册
func TestReleaseTarget(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}
	other := &target{name: "b"}

	handler := func(e *PointerEvent) bool { return false }
	r.Register(TypePointerDown, tgt, handler)
	r.Register(TypePointerUp, tgt, handler)
	r.Register(TypePointerCancel, tgt, handler)
	r.Register(TypePointerEnter, tgt, handler)
	r.Register(TypePointerLeave, tgt, handler)
	r.Register(TypePointerDown, other, handler)

	r.ReleaseTarget(tgt)

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (only the other target remains)", r.Len())
	}
	targets := r.Targets(TypePointerDown)
	if len(targets) != 1 || targets[0] != other {
		t.Error("Other target's registration should survive ReleaseTarget")
	}
}

// TestTargetsOrder 测试目标列表按注册顺序返回
func TestTargetsOrder(t *testing.T) {
	r := NewRegistry()
	a := &target{name: "a"}
	b := &target{name: "b"}
	c := &target{name: "c"}

	handler := func(e *PointerEvent) bool { return false }
	r.Register(TypePointerDown, a, handler)
	r.Register(TypePointerDown, b, handler)
	r.Register(TypePointerDown, c, handler)

	targets := r.Targets(TypePointerDown)
	if len(targets) != 3 {
		t.Fatalf("Targets length = %d, want 3", len(targets))
	}
	if targets[0] != a || targets[1] != b || targets[2] != c {
		t.Error("Targets should be returned in registration order")
	}
}

// TestTargetsSnapshot 测试返回的目标列表是快照，遍历期间注销不影响它
func TestTargetsSnapshot(t *testing.T) {
	r := NewRegistry()
	a := &target{name: "a"}
	b := &target{name: "b"}

	handler := func(e *PointerEvent) bool { return false }
	r.Register(TypePointerDown, a, handler)
	r.Register(TypePointerDown, b, handler)

	targets := r.Targets(TypePointerDown)
	r.Release(TypePointerDown, a)

	if len(targets) != 2 {
		t.Errorf("Snapshot length = %d, want 2 (unaffected by later release)", len(targets))
	}
}

// TestDispatchWrongType 测试派发目标未注册的事件类型返回 true
func TestDispatchWrongType(t *testing.T) {
	r := NewRegistry()
	tgt := &target{name: "a"}

	var called bool
	r.Register(TypePointerDown, tgt, func(e *PointerEvent) bool {
		called = true
		return false
	})

	if !r.Dispatch(TypePointerUp, tgt, &PointerEvent{Type: TypePointerUp}) {
		t.Error("Dispatch of an unregistered type should return true")
	}
	if called {
		t.Error("Handler of another type should not be invoked")
	}
}
