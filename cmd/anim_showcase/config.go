// cmd/anim_showcase/config.go
// 动画展示窗口的配置文件加载和解析

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/monanim/internal/palette"
)

// ShowcaseConfig 展示窗口完整配置
type ShowcaseConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Grid     GridConfig     `yaml:"grid"`
	Playback PlaybackConfig `yaml:"playback"`
	Sprite   SpriteConfig   `yaml:"sprite"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`

	background palette.Color
}

// GridConfig 网格布局配置
type GridConfig struct {
	Columns     int `yaml:"columns"`
	CellWidth   int `yaml:"cell_width"`
	CellHeight  int `yaml:"cell_height"`
	Padding     int `yaml:"padding"`
	RowsPerPage int `yaml:"rows_per_page"`
	// TopMargin 顶部信息栏高度
	TopMargin int `yaml:"top_margin"`
}

// PlaybackConfig 播放配置
type PlaybackConfig struct {
	TPS int `yaml:"tps"`
	// ReplayDelay 动画结束后等待多少帧自动重播，0 表示不重播
	ReplayDelay int `yaml:"replay_delay"`
	// PoolSize 上下文槽数量
	PoolSize int `yaml:"pool_size"`
	// Debug 记录上下文槽覆盖
	Debug bool `yaml:"debug"`
}

// SpriteConfig 占位精灵配置
type SpriteConfig struct {
	// FrameCount 帧动画帧数，0 表示没有帧动画
	FrameCount    int `yaml:"frame_count"`
	TicksPerFrame int `yaml:"ticks_per_frame"`
	// Colors 精灵调色板，十六进制颜色，最多 16 个
	Colors []string `yaml:"colors"`

	colors []palette.Color
}

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析配置并填充默认值
func ParseConfig(data []byte) (*ShowcaseConfig, error) {
	var config ShowcaseConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 设置默认值
	if config.Window.Width == 0 {
		config.Window.Width = 1280
	}
	if config.Window.Height == 0 {
		config.Window.Height = 720
	}
	if config.Window.Title == "" {
		config.Window.Title = "Mon Anim Showcase"
	}
	if config.Window.Background == "" {
		config.Window.Background = "#323232"
	}
	if config.Grid.Columns == 0 {
		config.Grid.Columns = 8
	}
	if config.Grid.CellWidth == 0 {
		config.Grid.CellWidth = 140
	}
	if config.Grid.CellHeight == 0 {
		config.Grid.CellHeight = 140
	}
	if config.Grid.Padding == 0 {
		config.Grid.Padding = 10
	}
	if config.Grid.RowsPerPage == 0 {
		config.Grid.RowsPerPage = 4
	}
	if config.Grid.TopMargin == 0 {
		config.Grid.TopMargin = 30
	}
	if config.Playback.TPS == 0 {
		config.Playback.TPS = 60
	}
	if config.Playback.PoolSize == 0 {
		config.Playback.PoolSize = 4
	}
	if config.Sprite.TicksPerFrame == 0 {
		config.Sprite.TicksPerFrame = 6
	}

	bg, err := palette.ParseHex(config.Window.Background)
	if err != nil {
		return nil, fmt.Errorf("背景颜色: %w", err)
	}
	config.Window.background = bg

	if len(config.Sprite.Colors) > palette.ColorsPerPalette {
		return nil, fmt.Errorf("精灵调色板有 %d 个颜色，最多 %d 个", len(config.Sprite.Colors), palette.ColorsPerPalette)
	}
	for _, hex := range config.Sprite.Colors {
		c, err := palette.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("精灵调色板: %w", err)
		}
		config.Sprite.colors = append(config.Sprite.colors, c)
	}

	return &config, nil
}

// CellsPerPage 每页单元数
func (c *ShowcaseConfig) CellsPerPage() int {
	return c.Grid.Columns * c.Grid.RowsPerPage
}
