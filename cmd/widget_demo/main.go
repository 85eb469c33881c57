// Package main 提供可点击控件的交互演示
//
// 用法:
//
//	go run cmd/widget_demo/main.go [-verbose] [-mute]
//
// 功能:
//   - 点击按钮计数，按钮按下/悬停时变色
//   - 长按按钮连续触发，长按区域触发一次
//   - 复选框切换悬停反馈和控件音效，设置自动持久化
//   - D 键摘除/挂载按钮，C 键注入指针取消，F11 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/gameui/pkg/app"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	mute    = flag.Bool("mute", false, "不初始化音频后端")
)

func main() {
	flag.Parse()

	demo, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		DisableAudio: *mute,
	})
	if err != nil {
		log.Fatalf("创建演示应用失败: %v", err)
	}

	// 设置窗口
	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("控件演示 - gameui")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 运行演示
	if err := ebiten.RunGame(demo); err != nil {
		log.Fatalf("运行演示失败: %v", err)
	}
}
