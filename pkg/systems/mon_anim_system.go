package systems

import (
	"fmt"
	"log"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

// SpeciesAnimSource 按物种查询动画，*config.MonAnimConfigManager 实现了该接口
type SpeciesAnimSource interface {
	FrontAnim(species int) (monanim.AnimID, error)
	FrontDelay(species int) int
	BackAnimSet(species int) (monanim.BackAnimSet, error)
}

// MonAnimSystem 每帧驱动所有宝可梦精灵的变换动画
//
// 执行顺序：
//  1. 把新精灵的调色板写入缓冲区
//  2. 每个精灵 Step 一次
//  3. 轮询战斗动画任务，结束的任务组件被移除
type MonAnimSystem struct {
	entityManager *ecs.EntityManager
	engine        *monanim.Engine
	palettes      *palette.Buffer
	species       SpeciesAnimSource
}

// NewMonAnimSystem 创建动画驱动系统
//
// 参数：
//   - em: 实体管理器
//   - engine: 动画引擎
//   - palettes: 调色板缓冲区，可为 nil
//   - species: 物种动画表，可为 nil（此时只能用 PlayAnim 指定编号）
func NewMonAnimSystem(em *ecs.EntityManager, engine *monanim.Engine, palettes *palette.Buffer, species SpeciesAnimSource) *MonAnimSystem {
	return &MonAnimSystem{
		entityManager: em,
		engine:        engine,
		palettes:      palettes,
		species:       species,
	}
}

// Engine 返回使用的动画引擎
func (s *MonAnimSystem) Engine() *monanim.Engine {
	return s.engine
}

// Update 推进一帧
func (s *MonAnimSystem) Update() {
	s.loadPalettes()

	for _, id := range ecs.GetEntitiesWith1[*components.MonSpriteComponent](s.entityManager) {
		mon, _ := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id)
		s.engine.Step(mon.Sprite)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.MonAnimTaskComponent](s.entityManager) {
		task, _ := ecs.GetComponent[*components.MonAnimTaskComponent](s.entityManager, id)
		if task.Task.Update() {
			ecs.RemoveComponent[*components.MonAnimTaskComponent](s.entityManager, id)
			if s.engine.Verbose {
				log.Printf("[MonAnimSystem] %s task finished (实体ID: %d)", task.Label, id)
			}
		}
	}
}

func (s *MonAnimSystem) loadPalettes() {
	if s.palettes == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PaletteComponent, *components.MonSpriteComponent](s.entityManager) {
		pal, _ := ecs.GetComponent[*components.PaletteComponent](s.entityManager, id)
		if pal.Loaded {
			continue
		}
		mon, _ := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id)
		if err := s.palettes.LoadObjectPalette(pal.PaletteNum, pal.Colors); err != nil {
			log.Printf("[MonAnimSystem] Warning: 实体 %d 调色板加载失败: %v", id, err)
		}
		mon.Sprite.PaletteNum = pal.PaletteNum
		pal.Loaded = true
	}
}

// PlayFront 按物种表为实体启动战斗中的前视动画
func (s *MonAnimSystem) PlayFront(id ecs.EntityID) error {
	mon, err := s.monSprite(id)
	if err != nil {
		return err
	}
	if s.species == nil {
		return fmt.Errorf("no species table configured")
	}
	animID, err := s.species.FrontAnim(mon.SpeciesID)
	if err != nil {
		return fmt.Errorf("前视动画查询失败: %w", err)
	}
	s.restartFrames(id)
	task, err := s.engine.LaunchFrontDelayed(mon.Sprite, animID, s.species.FrontDelay(mon.SpeciesID))
	s.attach(id, task, "front")
	return err
}

// PlayBack 按物种表和性格为实体启动战斗中的背视动画
func (s *MonAnimSystem) PlayBack(id ecs.EntityID) error {
	mon, err := s.monSprite(id)
	if err != nil {
		return err
	}
	if s.species == nil {
		return fmt.Errorf("no species table configured")
	}
	set, err := s.species.BackAnimSet(mon.SpeciesID)
	if err != nil {
		return fmt.Errorf("背视动画组查询失败: %w", err)
	}
	s.restartFrames(id)
	task, err := s.engine.LaunchBack(mon.Sprite, set)
	s.attach(id, task, "back")
	return err
}

// PlayAnim 以战斗模式启动指定编号的动画
func (s *MonAnimSystem) PlayAnim(id ecs.EntityID, animID monanim.AnimID) error {
	mon, err := s.monSprite(id)
	if err != nil {
		return err
	}
	s.restartFrames(id)
	task, err := s.engine.LaunchFront(mon.Sprite, animID)
	s.attach(id, task, animID.String())
	return err
}

// PlaySummary 以图鉴模式启动动画，不创建任务
func (s *MonAnimSystem) PlaySummary(id ecs.EntityID, animID monanim.AnimID) error {
	mon, err := s.monSprite(id)
	if err != nil {
		return err
	}
	s.dropTask(id)
	s.restartFrames(id)
	return s.engine.LaunchSummary(mon.Sprite, animID)
}

// Reset 强制结束实体的动画并复位精灵
func (s *MonAnimSystem) Reset(id ecs.EntityID) {
	mon, err := s.monSprite(id)
	if err != nil {
		return
	}
	s.engine.ResetToNeutral(mon.Sprite)
	s.dropTask(id)
}

// dropTask 移除实体的托管任务，仍在运行的任务先恢复精灵的镜像设置
func (s *MonAnimSystem) dropTask(id ecs.EntityID) {
	if task, ok := ecs.GetComponent[*components.MonAnimTaskComponent](s.entityManager, id); ok {
		task.Task.Abandon()
	}
	ecs.RemoveComponent[*components.MonAnimTaskComponent](s.entityManager, id)
}

// Busy 实体的动画是否仍在进行（包括等待启动延迟的任务）
func (s *MonAnimSystem) Busy(id ecs.EntityID) bool {
	if ecs.HasComponent[*components.MonAnimTaskComponent](s.entityManager, id) {
		return true
	}
	mon, err := s.monSprite(id)
	if err != nil {
		return false
	}
	return !s.engine.IsAnimationComplete(mon.Sprite)
}

func (s *MonAnimSystem) monSprite(id ecs.EntityID) (*components.MonSpriteComponent, error) {
	mon, ok := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id)
	if !ok || mon.Sprite == nil {
		return nil, fmt.Errorf("实体 %d 没有精灵组件", id)
	}
	return mon, nil
}

func (s *MonAnimSystem) attach(id ecs.EntityID, task *monanim.Task, label string) {
	if task == nil {
		return
	}
	s.entityManager.AddComponent(id, &components.MonAnimTaskComponent{Task: task, Label: label})
}

func (s *MonAnimSystem) restartFrames(id ecs.EntityID) {
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		anim.Restart()
		if mon, ok := ecs.GetComponent[*components.MonSpriteComponent](s.entityManager, id); ok {
			mon.Sprite.FrameAnimEnded = anim.IsLooping
		}
	}
}
