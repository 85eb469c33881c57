// Package widgets 提供可交互控件
//
// 控件以 ClickableWidget 为基础：它把指针事件注册表的五类事件接到
// 自己的生命周期回调上（按下、悬停、抬起、长按），并用定时器服务
// 做长按判定。Button、Checkbox 等具体控件在其上组合出各自的交互语义。
package widgets

import (
	"github.com/gonewx/gameui/pkg/config"
	"github.com/gonewx/gameui/pkg/display"
	"github.com/gonewx/gameui/pkg/event"
	"github.com/gonewx/gameui/pkg/timer"
)

// UIState 控件交互状态
// 渲染器根据状态选择对应的视觉表现
type UIState int

const (
	// UINormal 正常状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 按下未抬起
	UIClicked
	// UIDisabled 禁用（不响应点击）
	UIDisabled
)

// ClickableWidget 可点击控件基础
// 嵌入显示树容器，在激活时向事件注册表登记五类指针事件回调，
// 停用时全部释放并取消未决的长按计时
//
// 钩子字段均可为 nil：四个布尔钩子缺省视为返回 false（吞掉事件），
// OnHold 缺省为无操作。钩子返回 false 表示停止事件向下层目标传播
type ClickableWidget struct {
	display.Container

	// IsClickable 是否接受按下事件（禁用时按下被忽略）
	IsClickable bool
	// IsHoldable 按下时是否启动长按计时
	IsHoldable bool
	// HoldThreshold 长按触发阈值（毫秒）
	HoldThreshold float64

	// Hover 指针当前是否在控件边界内
	Hover bool
	// Released 当前是否没有未结的按压
	// true 时必然没有未决的长按计时
	Released bool

	// ===== 可覆盖钩子 =====
	// OnPress 有效按下后调用，返回传播信号
	OnPress func(e *event.PointerEvent) bool
	// OnHoverEnter 指针进入边界后调用，返回传播信号
	OnHoverEnter func(e *event.PointerEvent) bool
	// OnHoverLeave 指针离开边界后调用，返回传播信号
	OnHoverLeave func(e *event.PointerEvent) bool
	// OnRelease 按压结束后调用，返回传播信号
	OnRelease func(e *event.PointerEvent) bool
	// OnHold 按住超过 HoldThreshold 未抬起时调用（每次按压至多一次）
	OnHold func()

	registry    *event.Registry
	timers      *timer.Service
	holdTimeout timer.Handle
}

// NewClickableWidget 创建可点击控件
//
// 参数：
//   - registry: 共享的指针事件注册表
//   - timers: 共享的定时器服务
//   - x, y: 左上角屏幕坐标（像素）
//   - w, h: 宽度和高度（像素）
//
// 控件固定工作在屏幕空间（Floating），并脱离物理管辖（Kinematic），
// 保证包围盒/物理剔除不会吞掉它的指针事件
func NewClickableWidget(registry *event.Registry, timers *timer.Service, x, y, w, h float64) *ClickableWidget {
	widget := &ClickableWidget{
		Container:     *display.NewContainer(x, y, w, h),
		IsClickable:   true,
		HoldThreshold: config.DefaultHoldThresholdMs,
		Released:      true,
		registry:      registry,
		timers:        timers,
		holdTimeout:   timer.None,
	}
	widget.Floating = true
	widget.Kinematic = true
	return widget
}

// Press 处理指针按下
// 仅当按键为主键且 IsClickable 时生效；生效时标脏、进入按压状态，
// IsHoldable 时重置并启动长按计时（重新按下会重启计时，而不是叠加）。
// 返回 OnPress 的传播信号；未生效的按下返回 true，让事件继续传给下层
func (w *ClickableWidget) Press(e *event.PointerEvent) bool {
	if e == nil || e.Button != event.PrimaryButton || !w.IsClickable {
		return true
	}

	w.MarkDirty()
	w.Released = false

	if w.IsHoldable {
		// 取消旧计时再安排新计时，保证一次按压周期至多触发一次 OnHold
		w.timers.ClearTimeout(w.holdTimeout)
		w.holdTimeout = w.timers.SetTimeout(w.holdFire, w.HoldThreshold, false)
	}

	if w.OnPress != nil {
		return w.OnPress(e)
	}
	return false
}

// PointerEnter 处理指针进入边界
func (w *ClickableWidget) PointerEnter(e *event.PointerEvent) bool {
	w.Hover = true
	w.MarkDirty()
	if w.OnHoverEnter != nil {
		return w.OnHoverEnter(e)
	}
	return false
}

// PointerLeave 处理指针离开边界
// 离开会强制结束按压：指针已不在控件上，未结的按压和长按计时都作废
func (w *ClickableWidget) PointerLeave(e *event.PointerEvent) bool {
	w.Hover = false
	w.MarkDirty()
	w.PointerRelease(e)
	if w.OnHoverLeave != nil {
		return w.OnHoverLeave(e)
	}
	return false
}

// PointerRelease 处理指针抬起（pointerup 和 pointercancel 共用）
// 幂等：没有未结按压时是安全的无操作，返回 true 让事件继续传播。
// 生效时结束按压、标脏、取消未决的长按计时，返回 OnRelease 的传播信号
func (w *ClickableWidget) PointerRelease(e *event.PointerEvent) bool {
	if w.Released {
		return true
	}

	w.Released = true
	w.MarkDirty()
	w.timers.ClearTimeout(w.holdTimeout)
	w.holdTimeout = timer.None

	if w.OnRelease != nil {
		return w.OnRelease(e)
	}
	return false
}

// holdFire 长按计时到期回调
// 句柄归位并标脏；只有按压仍未结束时才触发 OnHold，
// 防止计时与抬起竞争时出现抬起后的长按
func (w *ClickableWidget) holdFire() {
	w.timers.ClearTimeout(w.holdTimeout)
	w.holdTimeout = timer.None
	w.MarkDirty()

	if !w.Released && w.OnHold != nil {
		w.OnHold()
	}
}

// Activate 激活控件
// 先向注册表登记五类指针事件，再走容器的激活流程（注册先于基础激活）
func (w *ClickableWidget) Activate() {
	if w.IsActive() {
		return
	}

	w.registry.Register(event.TypePointerDown, w, w.Press)
	w.registry.Register(event.TypePointerUp, w, w.PointerRelease)
	w.registry.Register(event.TypePointerCancel, w, w.PointerRelease)
	w.registry.Register(event.TypePointerEnter, w, w.PointerEnter)
	w.registry.Register(event.TypePointerLeave, w, w.PointerLeave)

	w.Container.Activate()
}

// Deactivate 停用控件
// 先释放全部事件注册并取消未决的长按计时，再走容器的停用流程
// （反注册先于基础停用），保证停用后不会有迟到的长按回调打到控件上
func (w *ClickableWidget) Deactivate() {
	if !w.IsActive() {
		return
	}

	w.registry.ReleaseTarget(w)
	w.timers.ClearTimeout(w.holdTimeout)
	w.holdTimeout = timer.None

	w.Container.Deactivate()
}

// State 返回控件当前的交互状态
func (w *ClickableWidget) State() UIState {
	switch {
	case !w.IsClickable:
		return UIDisabled
	case !w.Released:
		return UIClicked
	case w.Hover:
		return UIHovered
	default:
		return UINormal
	}
}

// HoldPending 返回是否有未决的长按计时（用于测试和诊断）
func (w *ClickableWidget) HoldPending() bool {
	return w.holdTimeout != timer.None
}
