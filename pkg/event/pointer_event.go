// Package event 提供指针事件模型和事件注册表
//
// 注册表按（事件类型，目标对象）维护回调，输入适配层负责从鼠标/触摸
// 状态合成事件并派发。注册表本身不做命中路由：向哪个目标派发由调用方
// 决定，这里只保证注册、释放和调用的一致性。
package event

// Type 指针事件类型
type Type string

// 指针事件类型常量
// 与浏览器 Pointer Events 同名，便于对照移植小游戏引擎的交互逻辑
const (
	// TypePointerDown 指针按下
	TypePointerDown Type = "pointerdown"
	// TypePointerUp 指针抬起
	TypePointerUp Type = "pointerup"
	// TypePointerCancel 指针取消（系统级中断，如窗口失焦、触摸被打断）
	TypePointerCancel Type = "pointercancel"
	// TypePointerEnter 指针进入目标边界
	TypePointerEnter Type = "pointerenter"
	// TypePointerLeave 指针离开目标边界
	TypePointerLeave Type = "pointerleave"
)

// PrimaryButton 主按键编码
// 鼠标左键和第一个触摸点都映射为 0
const PrimaryButton = 0

// 其余按键编码（与浏览器事件模型一致）
const (
	// MiddleButton 鼠标中键
	MiddleButton = 1
	// SecondaryButton 鼠标右键
	SecondaryButton = 2
)

// PointerEvent 指针事件
// 坐标为屏幕像素坐标（与显示树一致）
type PointerEvent struct {
	// Type 事件类型
	Type Type
	// X, Y 指针的屏幕坐标
	X, Y float64
	// Button 按键编码（主键为 0）
	// pointercancel 事件没有按键语义，固定为 PrimaryButton
	Button int
}

// Handler 指针事件回调
// 返回值为传播信号：返回 false 表示吞掉事件、停止向下层目标传播，
// 返回 true 表示继续传播
type Handler func(e *PointerEvent) bool
