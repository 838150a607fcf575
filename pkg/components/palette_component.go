package components

import "github.com/decker502/monanim/internal/palette"

// PaletteComponent 精灵使用的精灵调色板
type PaletteComponent struct {
	// PaletteNum 精灵调色板号（0..15）
	PaletteNum int
	// Colors 加载到缓冲区的原始颜色
	Colors []palette.Color
	// Loaded 是否已写入调色板缓冲区
	Loaded bool
}
