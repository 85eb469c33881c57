package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 指针交互相关的常量配置
// 控件库和舞台共用这组默认值，YAML 配置可以覆盖其中的可调项

const (
	// DefaultHoldThresholdMs 长按判定的默认阈值（毫秒）
	DefaultHoldThresholdMs float64 = 500

	// DefaultHoldRepeatMs 长按连发的默认间隔（毫秒）
	DefaultHoldRepeatMs float64 = 150
)

// InteractionConfig 指针交互配置数据结构
// 定义长按判定、连发节奏和悬停反馈的可调参数
type InteractionConfig struct {
	HoldThresholdMs     float64 `yaml:"holdThresholdMs"`     // 长按判定阈值（毫秒），0 表示使用默认值 500
	HoldRepeatMs        float64 `yaml:"holdRepeatMs"`        // 长按连发间隔（毫秒），0 表示使用默认值 150
	DisableHoverEffects bool    `yaml:"disableHoverEffects"` // 是否关闭悬停视觉反馈，默认 false（开启）
	ClickSound          string  `yaml:"clickSound"`          // 默认点击音效 ID，空表示无音效
}

// DefaultInteractionConfig 返回全部取默认值的交互配置
func DefaultInteractionConfig() *InteractionConfig {
	return &InteractionConfig{
		HoldThresholdMs: DefaultHoldThresholdMs,
		HoldRepeatMs:    DefaultHoldRepeatMs,
	}
}

// LoadInteractionConfig 从YAML文件加载交互配置
// 参数：
//
//	filepath - 配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*InteractionConfig - 解析后的交互配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadInteractionConfig(filepath string) (*InteractionConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction config file %s: %w", filepath, err)
	}

	var cfg InteractionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse interaction config YAML from %s: %w", filepath, err)
	}

	applyInteractionDefaults(&cfg)

	if err := validateInteractionConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid interaction config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// applyInteractionDefaults 为缺失的可选字段设置默认值
// 旧配置文件不写新字段也能正常加载
func applyInteractionDefaults(cfg *InteractionConfig) {
	if cfg.HoldThresholdMs == 0 {
		cfg.HoldThresholdMs = DefaultHoldThresholdMs
	}
	if cfg.HoldRepeatMs == 0 {
		cfg.HoldRepeatMs = DefaultHoldRepeatMs
	}
	// DisableHoverEffects 默认为 false（bool 零值），无需处理
	// ClickSound 默认为空字符串，无需处理
}

// validateInteractionConfig 验证配置字段的合法性
func validateInteractionConfig(cfg *InteractionConfig) error {
	if cfg.HoldThresholdMs < 0 {
		return fmt.Errorf("holdThresholdMs must not be negative, got %v", cfg.HoldThresholdMs)
	}
	if cfg.HoldRepeatMs < 0 {
		return fmt.Errorf("holdRepeatMs must not be negative, got %v", cfg.HoldRepeatMs)
	}
	return nil
}
