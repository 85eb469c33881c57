package stage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/gameui/pkg/config"
)

// UISettings 全局 UI 交互设置
// 注意：这些设置是全局的，不绑定到特定用户
type UISettings struct {
	HoldThresholdMs float64 `yaml:"holdThresholdMs"` // 长按判定阈值（毫秒）
	HoldRepeatMs    float64 `yaml:"holdRepeatMs"`    // 长按连发间隔（毫秒）
	HoverEffects    bool    `yaml:"hoverEffects"`    // 悬停视觉反馈开关
	SoundEnabled    bool    `yaml:"soundEnabled"`    // 控件音效开关
}

// DefaultUISettings 返回默认设置
func DefaultUISettings() *UISettings {
	return &UISettings{
		HoldThresholdMs: config.DefaultHoldThresholdMs,
		HoldRepeatMs:    config.DefaultHoldRepeatMs,
		HoverEffects:    true,
		SoundEnabled:    true,
	}
}

// SettingsManager 设置管理器
// 负责 UI 设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *UISettings    // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "ui"
	settingsProperty = "settings"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultUISettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultUISettings()
		return nil
	}

	// 检查设置数据是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultUISettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultUISettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings UISettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultUISettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *UISettings {
	return sm.settings
}

// InteractionConfig 把当前设置转换成交互配置
// 配合 Stage.ApplyConfig 使用，让持久化的设置作用到之后创建的控件上
func (sm *SettingsManager) InteractionConfig() *config.InteractionConfig {
	return &config.InteractionConfig{
		HoldThresholdMs:     sm.settings.HoldThresholdMs,
		HoldRepeatMs:        sm.settings.HoldRepeatMs,
		DisableHoverEffects: !sm.settings.HoverEffects,
	}
}

// SetHoldThresholdMs 设置长按判定阈值
//
// 负值会被钳制为 0
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHoldThresholdMs(ms float64) {
	sm.settings.HoldThresholdMs = clampMs(ms)
}

// SetHoldRepeatMs 设置长按连发间隔
//
// 负值会被钳制为 0
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHoldRepeatMs(ms float64) {
	sm.settings.HoldRepeatMs = clampMs(ms)
}

// SetHoverEffects 设置悬停视觉反馈开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHoverEffects(enabled bool) {
	sm.settings.HoverEffects = enabled
}

// SetSoundEnabled 设置控件音效开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// clampMs 将毫秒值钳制为非负数
func clampMs(ms float64) float64 {
	if ms < 0 {
		return 0
	}
	return ms
}
