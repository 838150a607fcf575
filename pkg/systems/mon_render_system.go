package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/ecs"
)

// MonRenderSystem 绘制宝可梦精灵
//
// 没有图像的精灵画成一个用调色板首色填充的占位方块，
// 方块右上角画一个小标记以便看出翻转和旋转。
type MonRenderSystem struct {
	entityManager *ecs.EntityManager
	palettes      *palette.Buffer
	placeholders  map[ecs.EntityID]*ebiten.Image
}

// NewMonRenderSystem 创建渲染系统
func NewMonRenderSystem(em *ecs.EntityManager, palettes *palette.Buffer) *MonRenderSystem {
	return &MonRenderSystem{
		entityManager: em,
		palettes:      palettes,
		placeholders:  make(map[ecs.EntityID]*ebiten.Image),
	}
}

// Draw 按实体 ID 顺序绘制
func (s *MonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.MonSpriteComponent](s.entityManager) {
		mon, _ := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id)
		if mon.Sprite.Invisible {
			continue
		}
		img := mon.Image
		if img == nil {
			img = s.placeholder(id, mon)
		}
		screen.DrawImage(img, &ebiten.DrawImageOptions{GeoM: SpriteGeoM(mon)})
	}
}

// SpriteGeoM 计算精灵从图像坐标到屏幕坐标的变换
//
// 仿射启用时使用精灵的矩阵，否则按 HFlip 水平翻转；最后平移到基准位置加偏移。
func SpriteGeoM(mon *components.MonSpriteComponent) ebiten.GeoM {
	sp := mon.Sprite
	var m ebiten.GeoM
	m.Translate(-float64(sp.Width)/2, -float64(sp.Height)/2)
	switch {
	case sp.AffineEnabled():
		m.Concat(sp.Matrix)
	case sp.HFlip:
		m.Scale(-1, 1)
	}
	x, y := sp.Offset()
	m.Translate(mon.BaseX+float64(x), mon.BaseY+float64(y))
	return m
}

func (s *MonRenderSystem) placeholder(id ecs.EntityID, mon *components.MonSpriteComponent) *ebiten.Image {
	img, ok := s.placeholders[id]
	if !ok {
		img = ebiten.NewImage(mon.Sprite.Width, mon.Sprite.Height)
		s.placeholders[id] = img
	}

	fill := color.Color(color.RGBA{R: 200, G: 200, B: 200, A: 255})
	mark := color.Color(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	if s.palettes != nil {
		colors := s.palettes.ObjectPalette(mon.Sprite.PaletteNum)
		fill = colors[0]
		if colors[1] != colors[0] {
			mark = colors[1]
		}
	}
	img.Fill(fill)

	w := mon.Sprite.Width
	size := w / 4
	img.SubImage(image.Rect(w-size, 0, w, size)).(*ebiten.Image).Fill(mark)
	return img
}

// ForgetPlaceholder 释放实体的占位图像
func (s *MonRenderSystem) ForgetPlaceholder(id ecs.EntityID) {
	if img, ok := s.placeholders[id]; ok {
		img.Deallocate()
		delete(s.placeholders, id)
	}
}
