package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestPointerButtonCodes 验证按键编码沿用 DOM MouseEvent.button 的取值
func TestPointerButtonCodes(t *testing.T) {
	if PointerButtonLeft != 0 {
		t.Errorf("PointerButtonLeft = %d, want 0", PointerButtonLeft)
	}
	if PointerButtonMiddle != 1 {
		t.Errorf("PointerButtonMiddle = %d, want 1", PointerButtonMiddle)
	}
	if PointerButtonRight != 2 {
		t.Errorf("PointerButtonRight = %d, want 2", PointerButtonRight)
	}
}

// TestMouseButtonFor 测试按键编码到 ebiten 鼠标按键的映射
func TestMouseButtonFor(t *testing.T) {
	tests := []struct {
		name   string
		button int
		want   ebiten.MouseButton
		wantOK bool
	}{
		{"left", PointerButtonLeft, ebiten.MouseButtonLeft, true},
		{"middle", PointerButtonMiddle, ebiten.MouseButtonMiddle, true},
		{"right", PointerButtonRight, ebiten.MouseButtonRight, true},
		{"out of range", 3, 0, false},
		{"negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mouseButtonFor(tt.button)
			if ok != tt.wantOK {
				t.Fatalf("mouseButtonFor(%d) ok = %v, want %v", tt.button, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("mouseButtonFor(%d) = %v, want %v", tt.button, got, tt.want)
			}
		})
	}
}

// TestUnsupportedButtonPolling 验证不支持的按键编码不会误报按下/释放
func TestUnsupportedButtonPolling(t *testing.T) {
	if pressed, _, _ := IsPointerJustPressed(7); pressed {
		t.Error("IsPointerJustPressed(7) should be false for unsupported button")
	}
	if released, _, _ := IsPointerJustReleased(7); released {
		t.Error("IsPointerJustReleased(7) should be false for unsupported button")
	}
	if IsPointerPressed(7) {
		t.Error("IsPointerPressed(7) should be false for unsupported button")
	}
}
