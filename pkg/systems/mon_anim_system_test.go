package systems

import (
	"errors"
	"testing"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

// stubSpecies 固定的物种表
type stubSpecies struct {
	front map[int]monanim.AnimID
	delay map[int]int
	back  map[int]monanim.BackAnimSet
}

func (s *stubSpecies) FrontAnim(species int) (monanim.AnimID, error) {
	id, ok := s.front[species]
	if !ok {
		return monanim.AnimNone, errors.New("unknown species")
	}
	return id, nil
}

func (s *stubSpecies) FrontDelay(species int) int {
	return s.delay[species]
}

func (s *stubSpecies) BackAnimSet(species int) (monanim.BackAnimSet, error) {
	set, ok := s.back[species]
	if !ok {
		return 0, errors.New("unknown species")
	}
	return set, nil
}

func newTestMonAnimSystem() (*ecs.EntityManager, *MonAnimSystem, *palette.Buffer) {
	em := ecs.NewEntityManager()
	buf := palette.NewBuffer()
	species := &stubSpecies{
		front: map[int]monanim.AnimID{25: monanim.AnimFlashYellow, 15: monanim.AnimHorizontalVibrate},
		delay: map[int]int{15: 35},
		back:  map[int]monanim.BackAnimSet{25: monanim.BackShakeFlashYellow},
	}
	return em, NewMonAnimSystem(em, monanim.NewEngine(nil, buf), buf, species), buf
}

func addMon(em *ecs.EntityManager, species int, colors []palette.Color) (ecs.EntityID, *components.MonSpriteComponent) {
	id := em.CreateEntity()
	mon := &components.MonSpriteComponent{Sprite: monanim.NewSprite(64, 64), SpeciesID: species}
	mon.Sprite.SpeciesID = species
	em.AddComponent(id, mon)
	if colors != nil {
		em.AddComponent(id, &components.PaletteComponent{PaletteNum: 2, Colors: colors})
	}
	return id, mon
}

// runUntilIdle 更新直到实体空闲，返回用掉的帧数
func runUntilIdle(s *MonAnimSystem, id ecs.EntityID, limit int) int {
	for i := 1; i <= limit; i++ {
		s.Update()
		if !s.Busy(id) {
			return i
		}
	}
	return -1
}

// TestPlayFrontWithDelay 测试带启动延迟的前视动画
func TestPlayFrontWithDelay(t *testing.T) {
	em, system, _ := newTestMonAnimSystem()
	id, mon := addMon(em, 15, nil)

	if err := system.PlayFront(id); err != nil {
		t.Fatalf("PlayFront failed: %v", err)
	}
	if !ecs.HasComponent[*components.MonAnimTaskComponent](em, id) {
		t.Fatal("Task component should be attached")
	}

	for i := 0; i < 35; i++ {
		system.Update()
		if mon.Sprite.X2 != 0 {
			t.Fatalf("Sprite moved during delay at tick %d", i)
		}
	}

	steps := runUntilIdle(system, id, 500)
	if steps < 0 {
		t.Fatal("Front animation did not finish")
	}
	if ecs.HasComponent[*components.MonAnimTaskComponent](em, id) {
		t.Error("Finished task should be removed")
	}
	if mon.Sprite.X2 != 0 || mon.Sprite.Y2 != 0 {
		t.Errorf("Sprite should be back at rest, got (%d, %d)", mon.Sprite.X2, mon.Sprite.Y2)
	}
}

// TestPlayBackUsesFamilyAndRestoresPalette 测试背视动画和调色板恢复
func TestPlayBackUsesFamilyAndRestoresPalette(t *testing.T) {
	em, system, buf := newTestMonAnimSystem()
	colors := []palette.Color{palette.RGB(4, 8, 12), palette.RGB(20, 20, 20)}
	id, mon := addMon(em, 25, colors)

	if err := system.PlayBack(id); err != nil {
		t.Fatalf("PlayBack failed: %v", err)
	}
	// 没有性格查询时使用修正值 0
	if got := mon.Sprite.CurrentAnim(); got != monanim.AnimShakeFlashYellowFast {
		t.Errorf("Expected %s, got %s", monanim.AnimShakeFlashYellowFast, got)
	}

	sawYellow := false
	for i := 0; i < 500 && system.Busy(id); i++ {
		system.Update()
		if buf.ObjectPalette(2)[0] != colors[0] {
			sawYellow = true
		}
	}
	if system.Busy(id) {
		t.Fatal("Back animation did not finish")
	}
	if !sawYellow {
		t.Error("Palette should flash during the animation")
	}
	if mon.Sprite.PaletteNum != 2 {
		t.Errorf("Expected PaletteNum=2, got %d", mon.Sprite.PaletteNum)
	}
	if got := buf.ObjectPalette(2)[0]; got != colors[0] {
		t.Errorf("Palette should be restored, got %s", got)
	}
}

// TestPlaySummaryAndReset 测试图鉴模式和强制复位
func TestPlaySummaryAndReset(t *testing.T) {
	em, system, _ := newTestMonAnimSystem()
	id, mon := addMon(em, 25, nil)
	mon.Sprite.Mirrored = true

	if err := system.PlaySummary(id, monanim.AnimHorizontalSlide); err != nil {
		t.Fatalf("PlaySummary failed: %v", err)
	}
	if ecs.HasComponent[*components.MonAnimTaskComponent](em, id) {
		t.Error("Summary playback should not create a task")
	}
	for i := 0; i < 10; i++ {
		system.Update()
	}
	if mon.Sprite.X2 >= 0 {
		t.Errorf("Mirrored sprite should slide left, got X2=%d", mon.Sprite.X2)
	}

	system.Reset(id)
	if system.Busy(id) || mon.Sprite.X2 != 0 {
		t.Error("Reset should stop the animation and clear offsets")
	}
}

// TestResetRestoresMirrorOfRunningTask 测试复位运行中的战斗动画时恢复镜像设置
func TestResetRestoresMirrorOfRunningTask(t *testing.T) {
	em, system, _ := newTestMonAnimSystem()
	id, mon := addMon(em, 25, nil)
	mon.Sprite.Mirrored = true

	if err := system.PlayAnim(id, monanim.AnimHorizontalSlide); err != nil {
		t.Fatalf("PlayAnim failed: %v", err)
	}
	system.Update()
	if mon.Sprite.Mirrored {
		t.Fatal("Battle playback should force unmirrored sprite")
	}

	system.Reset(id)
	if !mon.Sprite.Mirrored {
		t.Error("Reset should restore the mirror setting saved by the task")
	}
	if ecs.HasComponent[*components.MonAnimTaskComponent](em, id) {
		t.Error("Reset should remove the task")
	}

	// 再次启动的任务记录恢复后的值
	if err := system.PlayAnim(id, monanim.AnimHorizontalSlide); err != nil {
		t.Fatalf("PlayAnim failed: %v", err)
	}
	if runUntilIdle(system, id, 200) < 0 {
		t.Fatal("Animation did not finish")
	}
	if !mon.Sprite.Mirrored {
		t.Error("Finished task should restore the mirror setting")
	}
}

// TestPlayErrors 测试错误路径
func TestPlayErrors(t *testing.T) {
	em, system, _ := newTestMonAnimSystem()

	if err := system.PlayFront(ecs.EntityID(99)); err == nil {
		t.Error("Expected error for entity without sprite")
	}

	id, _ := addMon(em, 7, nil)
	if err := system.PlayFront(id); err == nil {
		t.Error("Expected error for species missing from table")
	}

	err := system.PlayAnim(id, monanim.AnimCount)
	if !errors.Is(err, monanim.ErrInvalidAnimationID) {
		t.Errorf("Expected ErrInvalidAnimationID, got %v", err)
	}
	if steps := runUntilIdle(system, id, 5); steps != 1 {
		t.Errorf("Invalid animation should finish on first update, got %d", steps)
	}
}
