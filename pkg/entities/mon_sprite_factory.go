package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

// 默认精灵尺寸（战斗精灵为 64x64）
const (
	DefaultMonWidth  = 64
	DefaultMonHeight = 64
)

// MonSpriteOptions 创建精灵实体的可选参数
type MonSpriteOptions struct {
	// Image 精灵图像，为 nil 时使用占位方块
	Image *ebiten.Image
	// X, Y 精灵中心的屏幕坐标
	X, Y float64
	// IsBack 我方背面精灵
	IsBack bool
	// Mirrored 镜像显示（图鉴中朝右的精灵）
	Mirrored bool
	// BattlerID 战斗位置
	BattlerID int
	// PaletteNum 精灵调色板号；Colors 为空时不添加调色板组件
	PaletteNum int
	Colors     []palette.Color
	// FrameCount 帧动画帧数，0 表示没有帧动画
	FrameCount    int
	TicksPerFrame int
}

// NewMonSpriteEntity 创建一个宝可梦精灵实体
// 参数:
//   - manager: EntityManager 实例
//   - species: 物种配置
//   - opts: 位置、图像、调色板等
//
// 返回: 创建的实体ID
func NewMonSpriteEntity(manager *ecs.EntityManager, species config.SpeciesAnims, opts MonSpriteOptions) ecs.EntityID {
	id := manager.CreateEntity()

	width, height := DefaultMonWidth, DefaultMonHeight
	if opts.Image != nil {
		b := opts.Image.Bounds()
		width, height = b.Dx(), b.Dy()
	}

	sprite := monanim.NewSprite(width, height)
	sprite.Mirrored = opts.Mirrored
	sprite.BattlerID = opts.BattlerID
	sprite.SpeciesID = species.ID
	sprite.PaletteNum = opts.PaletteNum

	manager.AddComponent(id, &components.MonSpriteComponent{
		Sprite:    sprite,
		Image:     opts.Image,
		SpeciesID: species.ID,
		Name:      species.Name,
		BaseX:     opts.X,
		BaseY:     opts.Y,
		IsBack:    opts.IsBack,
	})

	if len(opts.Colors) > 0 {
		manager.AddComponent(id, &components.PaletteComponent{
			PaletteNum: opts.PaletteNum,
			Colors:     opts.Colors,
		})
	}

	// 帧动画：播放一次后停在最后一帧
	if opts.FrameCount > 0 {
		sprite.FrameAnimEnded = false
		manager.AddComponent(id, &components.AnimationComponent{
			FrameCount:    opts.FrameCount,
			TicksPerFrame: opts.TicksPerFrame,
		})
	}

	return id
}
