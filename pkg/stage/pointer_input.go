// Package stage 把显示树、事件注册表和定时器服务组合成可运行的 UI 舞台
//
// 舞台每帧轮询指针设备，把位置变化翻译成进入/离开事件，把按键沿
// 注册顺序的逆序（后注册的在上层）分发给命中的控件，最后推进定时器。
package stage

import (
	"github.com/gonewx/gameui/pkg/utils"
)

// PointerInput 指针输入接口
// 抽象指针设备的每帧状态，便于测试时注入模拟输入
type PointerInput interface {
	// Update 每帧输入簿记（如触摸位置缓存），在读取状态前调用
	Update()
	// Position 当前指针位置（屏幕坐标）
	Position() (x, y int)
	// JustPressed 指定按键是否在本帧按下，以及按下位置
	JustPressed(button int) (bool, int, int)
	// JustReleased 指定按键是否在本帧释放，以及释放位置
	JustReleased(button int) (bool, int, int)
	// Canceled 平台是否在本帧取消了指针会话（如触摸被系统手势打断）
	Canceled() bool
}

// EbitenPointerInput 基于 ebiten 的指针输入实现
// 统一鼠标和触摸：触摸按主键处理，释放位置取最后一次触摸坐标
type EbitenPointerInput struct{}

// NewEbitenPointerInput 创建 ebiten 指针输入
func NewEbitenPointerInput() *EbitenPointerInput {
	return &EbitenPointerInput{}
}

// Update 刷新触摸位置缓存
func (i *EbitenPointerInput) Update() {
	utils.UpdateLastTouchPosition()
}

// Position 返回当前指针位置
func (i *EbitenPointerInput) Position() (int, int) {
	return utils.PointerPosition()
}

// JustPressed 返回指定按键本帧是否按下及位置
func (i *EbitenPointerInput) JustPressed(button int) (bool, int, int) {
	return utils.IsPointerJustPressed(button)
}

// JustReleased 返回指定按键本帧是否释放及位置
func (i *EbitenPointerInput) JustReleased(button int) (bool, int, int) {
	return utils.IsPointerJustReleased(button)
}

// Canceled ebiten 没有独立的指针取消信号，固定返回 false
// 宿主需要时通过 Stage.CancelPointer 主动注入取消
func (i *EbitenPointerInput) Canceled() bool {
	return false
}
