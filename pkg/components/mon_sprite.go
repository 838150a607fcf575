package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/pkg/monanim"
)

// MonSpriteComponent 宝可梦战斗精灵
//
// Sprite 由动画引擎读写，渲染时在 (BaseX, BaseY) 上叠加 Sprite 的偏移和仿射矩阵。
type MonSpriteComponent struct {
	// Sprite 动画引擎驱动的精灵状态
	Sprite *monanim.Sprite
	// Image 精灵图像，可为 nil（渲染系统画占位方块）
	Image *ebiten.Image

	// SpeciesID 物种编号（配置表中从 1 开始）
	SpeciesID int
	Name      string

	// BaseX, BaseY 精灵中心的屏幕坐标
	BaseX float64
	BaseY float64

	// IsBack 是否为我方背面精灵（使用背视动画组）
	IsBack bool
}
