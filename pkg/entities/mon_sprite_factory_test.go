package entities

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

// TestNewMonSpriteEntity 测试精灵实体的组件组合
func TestNewMonSpriteEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	species := config.SpeciesAnims{ID: 25, Name: "pikachu", Front: monanim.AnimFlashYellow}

	id := NewMonSpriteEntity(em, species, MonSpriteOptions{
		X: 120, Y: 80,
		Mirrored:   true,
		BattlerID:  1,
		PaletteNum: 3,
		Colors:     []palette.Color{palette.Yellow},
		FrameCount: 2, TicksPerFrame: 10,
	})

	mon, ok := ecs.GetComponent[*components.MonSpriteComponent](em, id)
	if !ok {
		t.Fatal("MonSpriteComponent should be attached")
	}
	if mon.Name != "pikachu" || mon.SpeciesID != 25 {
		t.Errorf("Unexpected identity %s/%d", mon.Name, mon.SpeciesID)
	}
	if mon.Sprite.SpeciesID != 25 || mon.Sprite.BattlerID != 1 || !mon.Sprite.Mirrored {
		t.Error("Sprite identity registers not set")
	}
	if mon.Sprite.Width != DefaultMonWidth || mon.Sprite.Height != DefaultMonHeight {
		t.Errorf("Expected default size, got %dx%d", mon.Sprite.Width, mon.Sprite.Height)
	}
	if mon.Sprite.FrameAnimEnded {
		t.Error("Sprite with frame animation should start with frames running")
	}

	if pal, ok := ecs.GetComponent[*components.PaletteComponent](em, id); !ok || pal.PaletteNum != 3 {
		t.Error("PaletteComponent should be attached with palette 3")
	}
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); !ok || anim.FrameCount != 2 {
		t.Error("AnimationComponent should be attached with 2 frames")
	}
}

// TestNewMonSpriteEntityMinimal 测试不带可选组件的精灵
func TestNewMonSpriteEntityMinimal(t *testing.T) {
	em := ecs.NewEntityManager()
	img := ebiten.NewImage(48, 40)

	id := NewMonSpriteEntity(em, config.SpeciesAnims{ID: 1, Name: "bulbasaur"}, MonSpriteOptions{Image: img})

	mon, _ := ecs.GetComponent[*components.MonSpriteComponent](em, id)
	if mon.Sprite.Width != 48 || mon.Sprite.Height != 40 {
		t.Errorf("Expected size from image, got %dx%d", mon.Sprite.Width, mon.Sprite.Height)
	}
	if !mon.Sprite.FrameAnimEnded {
		t.Error("Sprite without frame animation never blocks completion")
	}
	if ecs.HasComponent[*components.PaletteComponent](em, id) || ecs.HasComponent[*components.AnimationComponent](em, id) {
		t.Error("Optional components should be absent")
	}
}
