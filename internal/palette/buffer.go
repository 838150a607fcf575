package palette

import "fmt"

const (
	// ColorsPerPalette 每个子调色板的颜色数
	ColorsPerPalette = 16
	// ObjectPaletteBase 精灵调色板在缓冲区中的起始位置
	ObjectPaletteBase = 256
	// BufferSize 缓冲区总颜色数（背景 256 + 精灵 256）
	BufferSize = 512
)

// Buffer 调色板缓冲区
// Unfaded 保存原始颜色，Faded 保存混合后的实际显示颜色
type Buffer struct {
	Unfaded [BufferSize]Color
	Faded   [BufferSize]Color
}

// NewBuffer 创建空缓冲区
func NewBuffer() *Buffer {
	return &Buffer{}
}

// ObjectPaletteOffset 返回精灵调色板号对应的缓冲区偏移
func ObjectPaletteOffset(paletteNum int) int {
	return ObjectPaletteBase + paletteNum*ColorsPerPalette
}

// LoadObjectPalette 写入一个精灵子调色板（同时写入原始与显示缓冲区）
//
// 参数：
//   - paletteNum: 精灵调色板号（0..15）
//   - colors: 颜色列表，最多 16 个
//
// 返回：
//   - error: 调色板号越界或颜色数超过 16 时返回错误
func (b *Buffer) LoadObjectPalette(paletteNum int, colors []Color) error {
	if paletteNum < 0 || paletteNum >= ColorsPerPalette {
		return fmt.Errorf("palette number %d out of range", paletteNum)
	}
	if len(colors) > ColorsPerPalette {
		return fmt.Errorf("palette has %d colors, max %d", len(colors), ColorsPerPalette)
	}
	offset := ObjectPaletteOffset(paletteNum)
	copy(b.Unfaded[offset:], colors)
	copy(b.Faded[offset:], colors)
	return nil
}

// ObjectPalette 返回精灵子调色板的当前显示颜色
func (b *Buffer) ObjectPalette(paletteNum int) []Color {
	offset := ObjectPaletteOffset(paletteNum)
	return b.Faded[offset : offset+ColorsPerPalette]
}

// BlendPalette 将一段调色板向目标颜色线性混合
//
// 每个通道计算 c + ((target - c) * coeff >> 4)，coeff 为 0 时恢复原色，16 时为目标色。
// 越界的颜色索引被忽略。
//
// 参数：
//   - offset: 缓冲区起始索引
//   - count: 颜色数量
//   - coeff: 混合系数（0..16）
//   - target: 目标颜色
func (b *Buffer) BlendPalette(offset, count, coeff int, target Color) {
	for i := 0; i < count; i++ {
		index := offset + i
		if index < 0 || index >= BufferSize {
			continue
		}
		b.Faded[index] = Blend(b.Unfaded[index], target, coeff)
	}
}

// Blend 按系数混合两个颜色
func Blend(c, target Color, coeff int) Color {
	return RGB(
		c.R()+(((target.R()-c.R())*coeff)>>4),
		c.G()+(((target.G()-c.G())*coeff)>>4),
		c.B()+(((target.B()-c.B())*coeff)>>4),
	)
}
