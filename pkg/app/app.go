// Package app 提供控件演示应用的核心包装器
//
// 该包将演示应用的初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 cmd/widget_demo 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	uiaudio "github.com/gonewx/gameui/internal/audio"
	"github.com/gonewx/gameui/pkg/stage"
	"github.com/gonewx/gameui/pkg/utils"
	"github.com/gonewx/gameui/pkg/widgets"
)

// 演示应用的逻辑屏幕尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DisableAudio 不初始化音频后端（无声卡环境或调试时使用）
	DisableAudio bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
//
// 展示控件库的核心交互：
//   - 普通按钮（点击计数）
//   - 长按连发按钮（按住超过阈值后连续触发）
//   - 长按区域（触发一次长按回调）
//   - 复选框（切换悬停反馈/音效设置并持久化）
//
// 键盘操作：
//   - D: 摘除/重新挂载点击按钮（摘除后不再接收指针事件）
//   - C: 注入一次指针取消（模拟系统手势打断）
//   - F11: 切换全屏
type App struct {
	stage    *stage.Stage
	settings *stage.SettingsManager
	sounds   *uiaudio.Manager

	clickButton *widgets.Button
	holdButton  *widgets.Button
	holdArea    *widgets.ClickableWidget
	hoverCheck  *widgets.Checkbox
	soundCheck  *widgets.Checkbox

	clickCount  int
	repeatCount int
	holdCount   int
	status      string

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	a := &App{
		verbose: cfg.Verbose,
		status:  "点击、长按或勾选试试",
	}

	// 设置存储：Android 上需要先确保 gdata 的存储目录可写
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: Failed to prepare storage dir: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "gameui_demo"})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := stage.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: Settings manager error: %v", err)
	}
	a.settings = settings

	s := stage.NewStage(ScreenWidth, ScreenHeight)
	s.ApplyConfig(settings.InteractionConfig())
	a.stage = s

	// 音频后端：提示音在代码里合成，不依赖资源文件
	if !cfg.DisableAudio {
		sounds := uiaudio.NewManager(audio.NewContext(48000))
		sounds.RegisterTone("button_click", 880, 60)
		sounds.RegisterTone("checkbox_toggle", 660, 50)
		sounds.SetEnabled(settings.GetSettings().SoundEnabled)
		s.SetSoundPlayer(sounds)
		a.sounds = sounds
		log.Printf("[App] Audio manager initialized")
	}

	// 移动端放大控件，保证触摸目标足够大
	scale := 1.0
	if utils.IsMobile() {
		scale = 1.5
	}

	// 普通按钮：点击计数
	a.clickButton = s.NewButton(60, 80, 160*scale, 48*scale, "点我")
	a.clickButton.ClickSoundID = "button_click"
	a.clickButton.OnClick = func() {
		a.clickCount++
		a.status = fmt.Sprintf("按钮点击 %d 次", a.clickCount)
		log.Printf("[App] Button clicked: count=%d", a.clickCount)
	}

	// 长按连发按钮：按住超过阈值后按固定间隔连续触发
	a.holdButton = s.NewButton(60, 96+48*scale, 160*scale, 48*scale, "按住连发")
	a.holdButton.IsHoldable = true
	a.holdButton.OnRepeat = func() {
		a.repeatCount++
		a.status = fmt.Sprintf("连发 %d 次", a.repeatCount)
	}

	// 长按区域：按住超过阈值触发一次
	a.holdArea = s.NewClickableWidget(320, 80, 220*scale, 128*scale)
	a.holdArea.IsHoldable = true
	a.holdArea.OnHold = func() {
		a.holdCount++
		a.status = fmt.Sprintf("长按触发 %d 次", a.holdCount)
		log.Printf("[App] Hold fired: count=%d", a.holdCount)
	}

	// 复选框：切换悬停反馈并持久化
	checkSize := 24 * scale
	a.hoverCheck = s.NewCheckbox(60, 128+96*scale, checkSize, checkSize, "悬停反馈", settings.GetSettings().HoverEffects)
	a.hoverCheck.ToggleSoundID = "checkbox_toggle"
	a.hoverCheck.OnToggle = func(checked bool) {
		settings.SetHoverEffects(checked)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
		s.ApplyConfig(settings.InteractionConfig())
		a.status = fmt.Sprintf("悬停反馈: %v", checked)
	}

	// 复选框：切换控件音效并持久化
	a.soundCheck = s.NewCheckbox(60, 140+96*scale+checkSize, checkSize, checkSize, "控件音效", settings.GetSettings().SoundEnabled)
	a.soundCheck.ToggleSoundID = "checkbox_toggle"
	a.soundCheck.OnToggle = func(checked bool) {
		settings.SetSoundEnabled(checked)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
		if a.sounds != nil {
			a.sounds.SetEnabled(checked)
		}
		a.status = fmt.Sprintf("控件音效: %v", checked)
	}

	s.Root().AddChild(a.clickButton)
	s.Root().AddChild(a.holdButton)
	s.Root().AddChild(a.holdArea)
	s.Root().AddChild(a.hoverCheck)
	s.Root().AddChild(a.soundCheck)

	return a, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// D 键演示挂载/摘除：摘除后按钮停用，不再接收指针事件
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if a.clickButton.Parent() != nil {
			a.stage.Root().RemoveChild(a.clickButton)
			a.status = "按钮已摘除（按 D 恢复）"
			log.Printf("[App] Button detached from stage")
		} else {
			a.stage.Root().AddChild(a.clickButton)
			a.status = "按钮已重新挂载"
			log.Printf("[App] Button re-attached to stage")
		}
	}

	// C 键注入指针取消：所有未结的按压立即结束
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.stage.CancelPointer()
		a.status = "指针已取消"
		log.Printf("[App] Pointer canceled by host")
	}

	a.stage.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制控件
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 32, G: 36, B: 44, A: 255})

	if a.clickButton.Parent() != nil {
		a.drawWidgetRect(screen, &a.clickButton.ClickableWidget)
		a.drawWidgetLabel(screen, &a.clickButton.ClickableWidget, a.clickButton.Label)
	}

	a.drawWidgetRect(screen, &a.holdButton.ClickableWidget)
	a.drawWidgetLabel(screen, &a.holdButton.ClickableWidget, a.holdButton.Label)

	a.drawWidgetRect(screen, a.holdArea)
	a.drawWidgetLabel(screen, a.holdArea, "长按区域")

	a.drawCheckbox(screen, a.hoverCheck)
	a.drawCheckbox(screen, a.soundCheck)

	ebitenutil.DebugPrintAt(screen, a.status, 60, 420)
	ebitenutil.DebugPrintAt(screen, "D: detach/attach  C: cancel pointer  F11: fullscreen", 60, 560)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回应用的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Stage 返回演示应用的舞台
func (a *App) Stage() *stage.Stage {
	return a.stage
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// drawWidgetRect 按交互状态填充控件矩形
func (a *App) drawWidgetRect(screen *ebiten.Image, w *widgets.ClickableWidget) {
	x, y, width, height := w.Bounds()

	var clr color.RGBA
	switch w.State() {
	case widgets.UIDisabled:
		clr = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	case widgets.UIClicked:
		clr = color.RGBA{R: 40, G: 110, B: 60, A: 255}
	case widgets.UIHovered:
		if a.stage.HoverEffectsEnabled() {
			clr = color.RGBA{R: 100, G: 200, B: 120, A: 255}
		} else {
			clr = color.RGBA{R: 70, G: 160, B: 90, A: 255}
		}
	default:
		clr = color.RGBA{R: 70, G: 160, B: 90, A: 255}
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// drawWidgetLabel 在控件左上角打印标签
func (a *App) drawWidgetLabel(screen *ebiten.Image, w *widgets.ClickableWidget, label string) {
	x, y, _, _ := w.Bounds()
	ebitenutil.DebugPrintAt(screen, label, int(x)+8, int(y)+8)
}

// drawCheckbox 绘制复选框和旁边的文字
func (a *App) drawCheckbox(screen *ebiten.Image, c *widgets.Checkbox) {
	x, y, width, height := c.Bounds()

	boxClr := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if c.Hover && a.stage.HoverEffectsEnabled() {
		boxClr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, boxClr, false)

	if c.Checked {
		vector.DrawFilledRect(screen, float32(x)+5, float32(y)+5, float32(width)-10, float32(height)-10,
			color.RGBA{R: 100, G: 200, B: 120, A: 255}, false)
	}

	ebitenutil.DebugPrintAt(screen, c.Label, int(x+width)+10, int(y)+4)
}
