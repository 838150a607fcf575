package systems

import (
	"log"

	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/ecs"
)

// AnimationSystem 推进精灵自身的帧动画，并把"帧动画已播完"告诉动画引擎
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建帧动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进一帧
//
// 循环动画不会阻塞变换动画的结束，非循环动画要播到最后一帧。
func (s *AnimationSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.MonSpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		mon, _ := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id)

		advanceFrames(anim)
		if !anim.IsLooping && anim.IsFinished && !mon.Sprite.FrameAnimEnded {
			log.Printf("[AnimationSystem] 帧动画播放完成 (实体ID: %d)", id)
		}
		mon.Sprite.FrameAnimEnded = anim.IsLooping || anim.IsFinished
	}
}

func advanceFrames(anim *components.AnimationComponent) {
	if anim.IsFinished {
		return
	}
	if anim.FrameCount == 0 {
		anim.IsFinished = !anim.IsLooping
		return
	}
	anim.Counter++
	if anim.Counter < anim.TicksPerFrame {
		return
	}
	anim.Counter = 0
	anim.CurrentFrame++
	if anim.CurrentFrame >= anim.FrameCount {
		if anim.IsLooping {
			anim.CurrentFrame = 0
		} else {
			anim.CurrentFrame = anim.FrameCount - 1
			anim.IsFinished = true
		}
	}
}
