package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRGBChannels 测试通道打包
func TestRGBChannels(t *testing.T) {
	c := RGB(31, 22, 5)
	assert.Equal(t, 31, c.R())
	assert.Equal(t, 22, c.G())
	assert.Equal(t, 5, c.B())
	assert.Equal(t, 1, RGB(33, 0, 0).R(), "超出范围只保留低5位")
	assert.Equal(t, "RGB(31, 22, 5)", c.String())
}

// TestBlend 测试颜色混合公式
func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		base     Color
		target   Color
		coeff    int
		expected Color
	}{
		{"系数0保持原色", RGB(10, 20, 30), Red, 0, RGB(10, 20, 30)},
		{"系数16变为目标色", RGB(10, 20, 30), Red, 16, Red},
		{"半程混合", RGB(0, 0, 0), White, 8, RGB(15, 15, 15)},
		{"负差值向下取整", RGB(31, 31, 31), Black, 1, RGB(29, 29, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Blend(tt.base, tt.target, tt.coeff))
		})
	}
}

// TestBufferBlendPalette 测试缓冲区混合只写入显示缓冲区
func TestBufferBlendPalette(t *testing.T) {
	b := NewBuffer()
	colors := []Color{RGB(0, 0, 0), RGB(31, 0, 0), RGB(0, 31, 0)}
	require.NoError(t, b.LoadObjectPalette(2, colors))

	offset := ObjectPaletteOffset(2)
	assert.Equal(t, 288, offset)

	b.BlendPalette(offset, ColorsPerPalette, 16, Blue)
	assert.Equal(t, Blue, b.Faded[offset])
	assert.Equal(t, Blue, b.Faded[offset+1])
	assert.Equal(t, RGB(31, 0, 0), b.Unfaded[offset+1], "原始缓冲区不变")

	// 再次混合以原始颜色为源，不累积
	b.BlendPalette(offset, ColorsPerPalette, 0, Blue)
	assert.Equal(t, colors, b.ObjectPalette(2)[:3])
}

// TestBufferBlendOutOfRange 测试越界索引被忽略
func TestBufferBlendOutOfRange(t *testing.T) {
	b := NewBuffer()
	assert.NotPanics(t, func() {
		b.BlendPalette(BufferSize-4, ColorsPerPalette, 16, Red)
	})
	assert.Equal(t, Red, b.Faded[BufferSize-1])
}

// TestLoadObjectPaletteErrors 测试参数校验
func TestLoadObjectPaletteErrors(t *testing.T) {
	b := NewBuffer()
	assert.Error(t, b.LoadObjectPalette(16, nil))
	assert.Error(t, b.LoadObjectPalette(0, make([]Color, 17)))
}

// TestParseHex 测试十六进制颜色解析
func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseHex("#ffb200")
	require.NoError(t, err)
	assert.Equal(t, RGB(31, 22, 0), c)

	_, err = ParseHex("not-a-color")
	assert.Error(t, err)
}

// TestColorConversions 测试与 image/color 的互转
func TestColorConversions(t *testing.T) {
	assert.Equal(t, White, FromColor(color.White))
	assert.Equal(t, Green, FromColor(color.RGBA{G: 255, A: 255}))
	assert.Equal(t, Black, FromColor(color.Transparent))

	r, g, b, a := Red.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, "#ff0000", Red.Hex())
}
