package widgets

import (
	"github.com/gonewx/gameui/pkg/event"
	"github.com/gonewx/gameui/pkg/timer"
)

// Checkbox 复选框控件
// 在边界内抬起时翻转选中状态并通知 OnToggle
type Checkbox struct {
	ClickableWidget

	// Label 复选框文字（由渲染器消费）
	Label string
	// Checked 当前选中状态
	Checked bool
	// OnToggle 状态翻转回调，参数为翻转后的新状态
	OnToggle func(checked bool)
	// ToggleSoundID 翻转音效 ID，空串表示无音效
	ToggleSoundID string

	sound SoundPlayer
}

// NewCheckbox 创建复选框
func NewCheckbox(registry *event.Registry, timers *timer.Service, sound SoundPlayer, x, y, w, h float64, label string, checked bool) *Checkbox {
	c := &Checkbox{
		ClickableWidget: *NewClickableWidget(registry, timers, x, y, w, h),
		Label:           label,
		Checked:         checked,
		sound:           sound,
	}

	c.OnRelease = func(e *event.PointerEvent) bool {
		// 与按钮一致：只有边界内的真实抬起才翻转，取消事件只结束按压
		if c.Hover && e != nil && e.Type == event.TypePointerUp {
			c.Checked = !c.Checked
			if c.ToggleSoundID != "" && c.sound != nil {
				c.sound.PlaySound(c.ToggleSoundID)
			}
			if c.OnToggle != nil {
				c.OnToggle(c.Checked)
			}
		}
		return false
	}

	return c
}
