package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/monanim/pkg/monanim"
)

// 播放速度范围（每个渲染帧推进的动画帧数）
const (
	MinSpeed = 1
	MaxSpeed = 4
)

// ViewerSettings 动画查看器的偏好设置
type ViewerSettings struct {
	// LastAnim 上次选中的动画名
	LastAnim string `yaml:"lastAnim"`
	// Mirrored 是否以镜像精灵播放
	Mirrored bool `yaml:"mirrored"`
	// Speed 播放速度倍率
	Speed int `yaml:"speed"`
	// Strict 非法动画编号时直接 panic
	Strict bool `yaml:"strict"`
	// ShowUnused 列表中包含没有物种使用的动画
	ShowUnused bool `yaml:"showUnused"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		LastAnim: monanim.AnimVerticalSquishAndBounce.String(),
		Speed:    1,
	}
}

// SettingsManager 设置管理器
// 负责查看器设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *ViewerSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// OpenStorage 打开应用的跨平台存储
//
// 打开失败时返回 nil，调用方以降级模式运行。
func OpenStorage(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: storage unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: 可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Speed = clampSpeed(loaded.Speed)
	if _, err := monanim.ParseAnimID(loaded.LastAnim); err != nil {
		log.Printf("[SettingsManager] Warning: %v, resetting last animation", err)
		loaded.LastAnim = DefaultSettings().LastAnim
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
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
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// LastAnim 上次选中的动画，设置里的名字失效时返回第一个动画
func (sm *SettingsManager) LastAnim() monanim.AnimID {
	id, err := monanim.ParseAnimID(sm.settings.LastAnim)
	if err != nil || !id.Valid() {
		return monanim.AnimVerticalSquishAndBounce
	}
	return id
}

// SetLastAnim 记录选中的动画
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetLastAnim(id monanim.AnimID) {
	sm.settings.LastAnim = id.String()
}

// SetMirrored 设置镜像播放
func (sm *SettingsManager) SetMirrored(mirrored bool) {
	sm.settings.Mirrored = mirrored
}

// SetSpeed 设置播放速度，限制在 MinSpeed ~ MaxSpeed
func (sm *SettingsManager) SetSpeed(speed int) {
	sm.settings.Speed = clampSpeed(speed)
}

// SetStrict 设置严格模式
func (sm *SettingsManager) SetStrict(strict bool) {
	sm.settings.Strict = strict
}

// SetShowUnused 设置是否列出没有物种使用的动画
func (sm *SettingsManager) SetShowUnused(show bool) {
	sm.settings.ShowUnused = show
}

func clampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
