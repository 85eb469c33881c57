package stage

import (
	"github.com/gonewx/gameui/pkg/config"
	"github.com/gonewx/gameui/pkg/display"
	"github.com/gonewx/gameui/pkg/event"
	"github.com/gonewx/gameui/pkg/timer"
	"github.com/gonewx/gameui/pkg/widgets"
)

// pointerButtons 每帧轮询的按键编码
var pointerButtons = []int{event.PrimaryButton, event.MiddleButton, event.SecondaryButton}

// Stage UI 舞台
// 持有显示树的根容器、共享的事件注册表和定时器服务，
// 每帧把指针设备状态翻译成五类指针事件派发给注册的控件
//
// 舞台与控件都运行在游戏主循环里，整条事件链是单线程的：
// 回调内可以安全地读写控件状态，不需要任何锁
type Stage struct {
	root     *display.Container
	registry *event.Registry
	timers   *timer.Service
	input    PointerInput
	cfg      *config.InteractionConfig
	sound    widgets.SoundPlayer

	// hovered 记录上一帧指针落在哪些控件内，用于计算进入/离开的边沿
	hovered         map[any]bool
	cancelRequested bool
}

// NewStage 创建舞台，使用 ebiten 指针输入
//
// 参数：
//   - width, height: 舞台尺寸（像素），根容器以此为边界
func NewStage(width, height float64) *Stage {
	return NewStageWithInput(width, height, NewEbitenPointerInput())
}

// NewStageWithInput 创建舞台并注入指针输入实现（用于测试）
func NewStageWithInput(width, height float64, input PointerInput) *Stage {
	root := display.NewContainer(0, 0, width, height)
	root.Activate()

	return &Stage{
		root:     root,
		registry: event.NewRegistry(),
		timers:   timer.NewService(),
		input:    input,
		cfg:      config.DefaultInteractionConfig(),
		hovered:  make(map[any]bool),
	}
}

// Root 返回显示树根容器
// 控件挂到根容器（或其子树）上即被激活并开始接收指针事件
func (s *Stage) Root() *display.Container {
	return s.root
}

// Registry 返回共享的事件注册表
func (s *Stage) Registry() *event.Registry {
	return s.registry
}

// Timers 返回共享的定时器服务
func (s *Stage) Timers() *timer.Service {
	return s.timers
}

// ApplyConfig 应用交互配置
// 只影响之后创建的控件；nil 恢复默认配置
func (s *Stage) ApplyConfig(cfg *config.InteractionConfig) {
	if cfg == nil {
		cfg = config.DefaultInteractionConfig()
	}
	s.cfg = cfg
}

// Config 返回当前交互配置
func (s *Stage) Config() *config.InteractionConfig {
	return s.cfg
}

// SetSoundPlayer 注入音效播放器
// 只影响之后创建的控件；nil 表示静默
func (s *Stage) SetSoundPlayer(sound widgets.SoundPlayer) {
	s.sound = sound
}

// HoverEffectsEnabled 返回渲染器是否应该绘制悬停反馈
// 关闭时悬停事件仍照常派发（离开事件承担结束按压的职责），只是不建议渲染
func (s *Stage) HoverEffectsEnabled() bool {
	return !s.cfg.DisableHoverEffects
}

// CancelPointer 请求在下一次 Update 时广播指针取消事件
// 宿主在弹出模态窗口、切换场景等打断指针会话的时机调用
func (s *Stage) CancelPointer() {
	s.cancelRequested = true
}

// Update 推进舞台一帧
//
// 处理顺序固定：输入簿记 → 悬停进入/离开 → 按下 → 抬起 → 取消 → 定时器。
// 离开事件先于按下派发，保证"指针离开即结束按压"的约定在新按压开始前生效
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (s *Stage) Update(deltaTime float64) {
	s.input.Update()

	x, y := s.input.Position()
	s.updateHover(float64(x), float64(y))

	for _, btn := range pointerButtons {
		if ok, px, py := s.input.JustPressed(btn); ok {
			s.dispatchAt(event.TypePointerDown, float64(px), float64(py), btn)
		}
	}

	for _, btn := range pointerButtons {
		if ok, px, py := s.input.JustReleased(btn); ok {
			s.dispatchAt(event.TypePointerUp, float64(px), float64(py), btn)
		}
	}

	if s.cancelRequested || s.input.Canceled() {
		s.cancelRequested = false
		s.broadcastCancel(float64(x), float64(y))
	}

	s.timers.Update(deltaTime)
}

// Dirty 返回显示树是否有待重绘的节点
func (s *Stage) Dirty() bool {
	return s.root.IsDirty()
}

// updateHover 计算悬停边沿并派发进入/离开事件
// 进入/离开是点对点通知，不参与拦截传播；先派发全部离开，再派发全部进入
func (s *Stage) updateHover(px, py float64) {
	newHovered := make(map[any]bool)
	var enters []any

	for _, t := range s.registry.Targets(event.TypePointerEnter) {
		node, ok := t.(display.Node)
		if !ok {
			continue
		}
		if node.IsVisible() && node.ContainsPoint(px, py) {
			newHovered[t] = true
			if !s.hovered[t] {
				enters = append(enters, t)
			}
		}
	}

	for _, t := range s.registry.Targets(event.TypePointerLeave) {
		if s.hovered[t] && !newHovered[t] {
			e := &event.PointerEvent{Type: event.TypePointerLeave, X: px, Y: py, Button: event.PrimaryButton}
			s.registry.Dispatch(event.TypePointerLeave, t, e)
		}
	}

	for _, t := range enters {
		e := &event.PointerEvent{Type: event.TypePointerEnter, X: px, Y: py, Button: event.PrimaryButton}
		s.registry.Dispatch(event.TypePointerEnter, t, e)
	}

	s.hovered = newHovered
}

// dispatchAt 把按下/抬起事件派发给命中点上的控件
// 后注册的控件视为更上层，先收到事件；处理方返回 false 时停止向下层传播
func (s *Stage) dispatchAt(t event.Type, px, py float64, button int) {
	e := &event.PointerEvent{Type: t, X: px, Y: py, Button: button}

	targets := s.registry.Targets(t)
	for i := len(targets) - 1; i >= 0; i-- {
		target := targets[i]
		node, ok := target.(display.Node)
		if !ok {
			continue
		}
		if !node.IsVisible() || !node.ContainsPoint(px, py) {
			continue
		}
		if !s.registry.Dispatch(t, target, e) {
			break
		}
	}
}

// broadcastCancel 向所有注册了取消事件的控件广播
// 取消不做命中测试也不允许拦截：所有未结的按压都必须被终止
func (s *Stage) broadcastCancel(px, py float64) {
	e := &event.PointerEvent{Type: event.TypePointerCancel, X: px, Y: py, Button: event.PrimaryButton}
	for _, t := range s.registry.Targets(event.TypePointerCancel) {
		s.registry.Dispatch(event.TypePointerCancel, t, e)
	}
}

// ===== 控件工厂 =====
// 工厂把舞台的注册表、定时器、音效和交互配置注入新控件。
// 创建后的控件还需要挂到显示树上（AddChild）才会激活

// NewClickableWidget 创建可点击控件
func (s *Stage) NewClickableWidget(x, y, w, h float64) *widgets.ClickableWidget {
	cw := widgets.NewClickableWidget(s.registry, s.timers, x, y, w, h)
	cw.HoldThreshold = s.cfg.HoldThresholdMs
	return cw
}

// NewButton 创建按钮
func (s *Stage) NewButton(x, y, w, h float64, label string) *widgets.Button {
	b := widgets.NewButton(s.registry, s.timers, s.sound, x, y, w, h, label)
	b.HoldThreshold = s.cfg.HoldThresholdMs
	b.RepeatIntervalMs = s.cfg.HoldRepeatMs
	b.ClickSoundID = s.cfg.ClickSound
	return b
}

// NewCheckbox 创建复选框
func (s *Stage) NewCheckbox(x, y, w, h float64, label string, checked bool) *widgets.Checkbox {
	c := widgets.NewCheckbox(s.registry, s.timers, s.sound, x, y, w, h, label, checked)
	c.HoldThreshold = s.cfg.HoldThresholdMs
	c.ToggleSoundID = s.cfg.ClickSound
	return c
}
