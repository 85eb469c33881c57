// Package main 提供交互配置文件的校验工具
//
// 用法:
//
//	go run cmd/check_config/main.go <配置文件> [更多配置文件...]
//
// 对每个文件执行完整的加载流程（解析、默认值填充、取值校验），
// 任何一个文件不合法时以非零状态码退出。
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/gameui/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("用法: %s <配置文件> [更多配置文件...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := 0
	for _, path := range os.Args[1:] {
		cfg, err := config.LoadInteractionConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("✅ %s 格式正确\n", path)
		fmt.Printf("   长按阈值: %.0fms  连发间隔: %.0fms  悬停反馈: %v\n",
			cfg.HoldThresholdMs, cfg.HoldRepeatMs, !cfg.DisableHoverEffects)
		if cfg.ClickSound != "" {
			fmt.Printf("   点击音效: %s\n", cfg.ClickSound)
		}
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个配置文件不合法\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有配置文件均通过校验\n")
}
