package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/monanim/pkg/monanim"
)

func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "monanim_settings_test"})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Speed != 1 {
		t.Errorf("Speed: got %d, want 1", settings.Speed)
	}
	if settings.Mirrored || settings.Strict || settings.ShowUnused {
		t.Error("Toggles should default to false")
	}
	if settings.LastAnim != "v_squish_and_bounce" {
		t.Errorf("LastAnim: got %q", settings.LastAnim)
	}
}

// TestSettingsNilStorage 测试降级模式
func TestSettingsNilStorage(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSpeed(3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().Speed != 1 {
		t.Error("Degraded mode cannot persist, Load resets to defaults")
	}
}

// TestSettingsClampSpeed 测试速度限制
func TestSettingsClampSpeed(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"过小", 0, MinSpeed},
		{"正常", 2, 2},
		{"过大", 9, MaxSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetSpeed(tt.input)
			if got := sm.GetSettings().Speed; got != tt.want {
				t.Errorf("Speed: got %d, want %d", got, tt.want)
			}
		})
	}
}

// TestSettingsPersist 测试保存后重新加载
func TestSettingsPersist(t *testing.T) {
	storage := openTestStorage(t)

	sm := NewSettingsManager(storage)
	sm.SetLastAnim(monanim.AnimTwistTwice)
	sm.SetMirrored(true)
	sm.SetSpeed(4)
	sm.SetShowUnused(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewSettingsManager(storage)
	if reloaded.LastAnim() != monanim.AnimTwistTwice {
		t.Errorf("LastAnim: got %s", reloaded.LastAnim())
	}
	s := reloaded.GetSettings()
	if !s.Mirrored || s.Speed != 4 || !s.ShowUnused || s.Strict {
		t.Errorf("Unexpected settings after reload: %+v", s)
	}
}

// TestSettingsUnknownAnimName 测试存档里的动画名失效
func TestSettingsUnknownAnimName(t *testing.T) {
	storage := openTestStorage(t)
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("lastAnim: moonwalk\nspeed: 7\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := NewSettingsManager(storage)
	if sm.LastAnim() != monanim.AnimVerticalSquishAndBounce {
		t.Errorf("Expected fallback animation, got %s", sm.LastAnim())
	}
	if sm.GetSettings().Speed != MaxSpeed {
		t.Errorf("Expected clamped speed, got %d", sm.GetSettings().Speed)
	}
}
