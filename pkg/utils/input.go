// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 指针按键编码
// 取值沿用 DOM MouseEvent.button 的约定：0=主键（左键/触摸），1=中键，2=次键
const (
	// PointerButtonLeft 主键（鼠标左键或触摸）
	PointerButtonLeft = 0
	// PointerButtonMiddle 中键（滚轮按下）
	PointerButtonMiddle = 1
	// PointerButtonRight 次键（鼠标右键）
	PointerButtonRight = 2
)

// mouseButtonFor 把按键编码映射到 ebiten 的鼠标按键
// 返回 false 表示编码不在支持范围内
func mouseButtonFor(button int) (ebiten.MouseButton, bool) {
	switch button {
	case PointerButtonLeft:
		return ebiten.MouseButtonLeft, true
	case PointerButtonMiddle:
		return ebiten.MouseButtonMiddle, true
	case PointerButtonRight:
		return ebiten.MouseButtonRight, true
	default:
		return 0, false
	}
}

// 保存最后一次触摸位置（触摸释放的那一帧已经拿不到坐标，用上一帧的）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// PointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	return ebiten.CursorPosition()
}

// IsPointerJustPressed 检查指定按键是否在本帧按下
// 触摸视为主键按下。返回是否按下以及按下位置
func IsPointerJustPressed(button int) (bool, int, int) {
	// 触摸只映射到主键
	if button == PointerButtonLeft {
		touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
		if len(touchIDs) > 0 {
			x, y := ebiten.TouchPosition(touchIDs[0])
			lastTouchX, lastTouchY = x, y
			return true, x, y
		}
	}

	mb, ok := mouseButtonFor(button)
	if !ok {
		return false, 0, 0
	}
	if inpututil.IsMouseButtonJustPressed(mb) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerJustReleased 检查指定按键是否在本帧释放
// 触摸释放时使用保存的最后触摸位置。返回是否释放以及释放位置
func IsPointerJustReleased(button int) (bool, int, int) {
	if button == PointerButtonLeft {
		releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
		if len(releasedTouchIDs) > 0 {
			return true, lastTouchX, lastTouchY
		}
	}

	mb, ok := mouseButtonFor(button)
	if !ok {
		return false, 0, 0
	}
	if inpututil.IsMouseButtonJustReleased(mb) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerPressed 检查指定按键当前是否处于按下状态
func IsPointerPressed(button int) bool {
	if button == PointerButtonLeft {
		touchIDs := ebiten.AppendTouchIDs(nil)
		if len(touchIDs) > 0 {
			return true
		}
	}

	mb, ok := mouseButtonFor(button)
	if !ok {
		return false
	}
	return ebiten.IsMouseButtonPressed(mb)
}

// IsTouchActive 检测当前是否有活动的触摸
func IsTouchActive() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}
