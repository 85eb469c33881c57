package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultInteractionConfig 测试默认交互配置
func TestDefaultInteractionConfig(t *testing.T) {
	cfg := DefaultInteractionConfig()

	if cfg == nil {
		t.Fatal("DefaultInteractionConfig() returned nil")
	}

	if cfg.HoldThresholdMs != DefaultHoldThresholdMs {
		t.Errorf("HoldThresholdMs = %v, want %v", cfg.HoldThresholdMs, DefaultHoldThresholdMs)
	}

	if cfg.HoldRepeatMs != DefaultHoldRepeatMs {
		t.Errorf("HoldRepeatMs = %v, want %v", cfg.HoldRepeatMs, DefaultHoldRepeatMs)
	}

	if cfg.DisableHoverEffects {
		t.Error("DisableHoverEffects = true, want false")
	}

	if cfg.ClickSound != "" {
		t.Errorf("ClickSound = %q, want empty", cfg.ClickSound)
	}
}

// TestLoadInteractionConfig 测试交互配置文件加载
func TestLoadInteractionConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		// 创建临时测试文件
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "interaction.yaml")

		validYAML := `holdThresholdMs: 800
holdRepeatMs: 200
disableHoverEffects: true
clickSound: "ui_click"
`
		if err := os.WriteFile(testFile, []byte(validYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		// 加载配置
		cfg, err := LoadInteractionConfig(testFile)
		if err != nil {
			t.Fatalf("LoadInteractionConfig() failed: %v", err)
		}

		if cfg.HoldThresholdMs != 800 {
			t.Errorf("Expected HoldThresholdMs 800, got %v", cfg.HoldThresholdMs)
		}
		if cfg.HoldRepeatMs != 200 {
			t.Errorf("Expected HoldRepeatMs 200, got %v", cfg.HoldRepeatMs)
		}
		if !cfg.DisableHoverEffects {
			t.Error("Expected DisableHoverEffects true, got false")
		}
		if cfg.ClickSound != "ui_click" {
			t.Errorf("Expected ClickSound 'ui_click', got '%s'", cfg.ClickSound)
		}
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "partial.yaml")

		partialYAML := `clickSound: "tap"
`
		if err := os.WriteFile(testFile, []byte(partialYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadInteractionConfig(testFile)
		if err != nil {
			t.Fatalf("LoadInteractionConfig() failed: %v", err)
		}

		if cfg.HoldThresholdMs != DefaultHoldThresholdMs {
			t.Errorf("Expected default HoldThresholdMs %v, got %v", DefaultHoldThresholdMs, cfg.HoldThresholdMs)
		}
		if cfg.HoldRepeatMs != DefaultHoldRepeatMs {
			t.Errorf("Expected default HoldRepeatMs %v, got %v", DefaultHoldRepeatMs, cfg.HoldRepeatMs)
		}
		if cfg.ClickSound != "tap" {
			t.Errorf("Expected ClickSound 'tap', got '%s'", cfg.ClickSound)
		}
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "empty.yaml")

		if err := os.WriteFile(testFile, []byte(""), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadInteractionConfig(testFile)
		if err != nil {
			t.Fatalf("LoadInteractionConfig() failed: %v", err)
		}

		if cfg.HoldThresholdMs != DefaultHoldThresholdMs {
			t.Errorf("Expected default HoldThresholdMs %v, got %v", DefaultHoldThresholdMs, cfg.HoldThresholdMs)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadInteractionConfig("nonexistent-interaction.yaml")
		if err == nil {
			t.Error("Expected error for nonexistent file, got nil")
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "invalid.yaml")

		invalidYAML := `holdThresholdMs: [not a number
invalid yaml structure
`
		if err := os.WriteFile(testFile, []byte(invalidYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		_, err := LoadInteractionConfig(testFile)
		if err == nil {
			t.Error("Expected error for invalid YAML, got nil")
		}
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "negative.yaml")

		negativeYAML := `holdThresholdMs: -100
`
		if err := os.WriteFile(testFile, []byte(negativeYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		_, err := LoadInteractionConfig(testFile)
		if err == nil {
			t.Error("Expected error for negative threshold, got nil")
		}
	})

	t.Run("negative repeat interval rejected", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "negative-repeat.yaml")

		negativeYAML := `holdRepeatMs: -1
`
		if err := os.WriteFile(testFile, []byte(negativeYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		_, err := LoadInteractionConfig(testFile)
		if err == nil {
			t.Error("Expected error for negative repeat interval, got nil")
		}
	})
}

// TestValidateInteractionConfig 测试配置校验逻辑
func TestValidateInteractionConfig(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := DefaultInteractionConfig()
		if err := validateInteractionConfig(cfg); err != nil {
			t.Errorf("validateInteractionConfig() on defaults failed: %v", err)
		}
	})

	t.Run("zero values pass", func(t *testing.T) {
		cfg := &InteractionConfig{}
		if err := validateInteractionConfig(cfg); err != nil {
			t.Errorf("validateInteractionConfig() on zero config failed: %v", err)
		}
	})

	t.Run("negative threshold fails", func(t *testing.T) {
		cfg := &InteractionConfig{HoldThresholdMs: -1}
		if err := validateInteractionConfig(cfg); err == nil {
			t.Error("Expected error for negative HoldThresholdMs, got nil")
		}
	})

	t.Run("negative repeat fails", func(t *testing.T) {
		cfg := &InteractionConfig{HoldRepeatMs: -0.5}
		if err := validateInteractionConfig(cfg); err == nil {
			t.Error("Expected error for negative HoldRepeatMs, got nil")
		}
	})
}
