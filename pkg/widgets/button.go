package widgets

import (
	"github.com/gonewx/gameui/pkg/event"
	"github.com/gonewx/gameui/pkg/timer"
)

// Button 按钮控件
// 在控件边界内抬起时视为一次点击；支持长按连发：
// 按住超过阈值触发首次 OnRepeat，之后按 RepeatIntervalMs 间隔重复，
// 直到抬起、指针离开或控件停用
type Button struct {
	ClickableWidget

	// Label 按钮文字（由渲染器消费）
	Label string
	// OnClick 点击回调，在边界内抬起时触发
	OnClick func()
	// OnRepeat 长按连发回调
	// 需要连发时把 IsHoldable 置 true 并赋值本字段
	OnRepeat func()
	// RepeatIntervalMs 连发间隔（毫秒），<= 0 时长按只触发一次
	RepeatIntervalMs float64
	// ClickSoundID 点击音效 ID，空串表示无音效
	ClickSoundID string

	sound        SoundPlayer
	repeatHandle timer.Handle
}

// NewButton 创建按钮
// sound 可为 nil（静默）。长按连发默认关闭
func NewButton(registry *event.Registry, timers *timer.Service, sound SoundPlayer, x, y, w, h float64, label string) *Button {
	b := &Button{
		ClickableWidget: *NewClickableWidget(registry, timers, x, y, w, h),
		Label:           label,
		sound:           sound,
		repeatHandle:    timer.None,
	}

	b.OnRelease = func(e *event.PointerEvent) bool {
		b.stopRepeat()
		// 只有指针仍在边界内的真实抬起才算点击：
		// 指针先离开再抬起时 Hover 已被清掉，取消事件结束按压但不产生点击
		if b.Hover && e != nil && e.Type == event.TypePointerUp {
			if b.ClickSoundID != "" && b.sound != nil {
				b.sound.PlaySound(b.ClickSoundID)
			}
			if b.OnClick != nil {
				b.OnClick()
			}
		}
		return false
	}

	b.OnHold = func() {
		if b.OnRepeat == nil {
			return
		}
		b.OnRepeat()
		if b.RepeatIntervalMs > 0 {
			b.timers.ClearTimeout(b.repeatHandle)
			b.repeatHandle = b.timers.SetTimeout(func() {
				if b.OnRepeat != nil {
					b.OnRepeat()
				}
			}, b.RepeatIntervalMs, true)
		}
	}

	return b
}

// Deactivate 停用按钮，连发计时一并取消
func (b *Button) Deactivate() {
	if !b.IsActive() {
		return
	}
	b.stopRepeat()
	b.ClickableWidget.Deactivate()
}

// RepeatPending 返回连发计时是否在运行（用于测试和诊断）
func (b *Button) RepeatPending() bool {
	return b.repeatHandle != timer.None
}

func (b *Button) stopRepeat() {
	b.timers.ClearTimeout(b.repeatHandle)
	b.repeatHandle = timer.None
}
