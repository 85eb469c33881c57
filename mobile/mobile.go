//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.gameui -o build/android/gameui.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/GameUI.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/gameui/pkg/app"
)

func init() {
	// 创建演示应用，移动端默认开启详细日志便于调试
	cfg := app.Config{
		Verbose: true,
	}

	demo, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("演示应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(demo)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
