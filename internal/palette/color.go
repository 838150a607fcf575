// Package palette 提供 RGB555 调色板缓冲区与颜色混合
//
// 精灵使用 16 色子调色板，精灵调色板位于缓冲区的 256 号之后。
// 混合总是以未褪色（原始）缓冲区为源、写入已褪色缓冲区，
// 因此多次混合不会累积误差。
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color 15 位 RGB 颜色（每通道 0..31）
type Color uint16

const channelMax = 31

// 常用颜色
var (
	Black  = RGB(0, 0, 0)
	White  = RGB(31, 31, 31)
	Red    = RGB(31, 0, 0)
	Green  = RGB(0, 31, 0)
	Blue   = RGB(0, 0, 31)
	Yellow = RGB(31, 31, 0)
	Purple = RGB(24, 0, 24)
	Orange = RGB(31, 22, 0)
)

// RGB 构建颜色，通道值超出 0..31 时只保留低 5 位
func RGB(r, g, b int) Color {
	return Color((r & channelMax) | (g&channelMax)<<5 | (b&channelMax)<<10)
}

// R 红色通道
func (c Color) R() int { return int(c) & channelMax }

// G 绿色通道
func (c Color) G() int { return int(c>>5) & channelMax }

// B 蓝色通道
func (c Color) B() int { return int(c>>10) & channelMax }

// RGBA 实现 color.Color，通道按 5 位扩展到 16 位
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(c.R()), expand(c.G()), expand(c.B()), 0xffff
}

func expand(v int) uint32 {
	return uint32(v) * 0xffff / channelMax
}

// Colorful 转换为 go-colorful 颜色（sRGB，0..1）
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / channelMax,
		G: float64(c.G()) / channelMax,
		B: float64(c.B()) / channelMax,
	}
}

// FromColorful 将 go-colorful 颜色量化为 RGB555（四舍五入并截断到色域内）
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return RGB(quantize(c.R), quantize(c.G), quantize(c.B))
}

// FromColor 将任意 image/color 颜色量化为 RGB555
func FromColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// 全透明颜色无法还原，按黑色处理
		return Black
	}
	return FromColorful(cf)
}

func quantize(v float64) int {
	return int(v*channelMax + 0.5)
}

// ParseHex 解析 "#rrggbb" 形式的颜色
//
// 参数：
//   - s: 十六进制颜色字符串
//
// 返回：
//   - Color: 量化后的颜色
//   - error: 格式错误时返回错误
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// Hex 返回颜色的 "#rrggbb" 表示
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String 实现 fmt.Stringer
func (c Color) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R(), c.G(), c.B())
}
