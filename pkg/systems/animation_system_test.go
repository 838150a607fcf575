package systems

import (
	"testing"

	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

func newFrameAnimEntity(em *ecs.EntityManager, frames, ticks int, looping bool) (ecs.EntityID, *monanim.Sprite, *components.AnimationComponent) {
	id := em.CreateEntity()
	sprite := monanim.NewSprite(32, 32)
	sprite.FrameAnimEnded = false
	anim := &components.AnimationComponent{FrameCount: frames, TicksPerFrame: ticks, IsLooping: looping}
	em.AddComponent(id, &components.MonSpriteComponent{Sprite: sprite})
	em.AddComponent(id, anim)
	return id, sprite, anim
}

// TestAnimationFrameAdvance 测试帧动画推进和结束通知
func TestAnimationFrameAdvance(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sprite, anim := newFrameAnimEntity(em, 3, 2, false)

	// 3 帧 × 2 tick，第 6 次更新时停在最后一帧
	for i := 1; i <= 5; i++ {
		system.Update()
		if anim.IsFinished {
			t.Fatalf("Animation finished too early at tick %d", i)
		}
		if sprite.FrameAnimEnded {
			t.Fatalf("Sprite notified too early at tick %d", i)
		}
	}
	if anim.CurrentFrame != 2 {
		t.Errorf("Expected CurrentFrame=2, got %d", anim.CurrentFrame)
	}

	system.Update()
	if !anim.IsFinished || anim.CurrentFrame != 2 {
		t.Errorf("Expected finished on last frame, got finished=%v frame=%d", anim.IsFinished, anim.CurrentFrame)
	}
	if !sprite.FrameAnimEnded {
		t.Error("Sprite should be notified when frames end")
	}
}

// TestLoopingAnimationNeverBlocks 测试循环帧动画不阻塞变换动画
func TestLoopingAnimationNeverBlocks(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sprite, anim := newFrameAnimEntity(em, 2, 1, true)

	for i := 0; i < 5; i++ {
		system.Update()
		if !sprite.FrameAnimEnded {
			t.Fatal("Looping animation should report ended every tick")
		}
	}
	if anim.IsFinished {
		t.Error("Looping animation never finishes")
	}
	if anim.CurrentFrame != 1 {
		t.Errorf("Expected CurrentFrame=1 after 5 ticks, got %d", anim.CurrentFrame)
	}
}

// TestEmptyAnimationFinishesImmediately 测试没有帧的动画
func TestEmptyAnimationFinishesImmediately(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sprite, anim := newFrameAnimEntity(em, 0, 1, false)

	system.Update()
	if !anim.IsFinished || !sprite.FrameAnimEnded {
		t.Error("Animation without frames should finish at once")
	}
}
