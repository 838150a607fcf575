package monanim

import (
	"fmt"
	"log"
)

// taskState 托管任务的阶段
type taskState int

const (
	taskPending taskState = iota
	taskRunning
	taskDone
)

// Task 托管一次战斗中的精灵动画
//
// 启动时记录精灵的身份并强制非镜像播放，动画进入终止状态后恢复这些字段。
// 宿主每帧先 Step 精灵再调用 Update，Update 返回 true 后丢弃任务。
type Task struct {
	// Sprite 被托管的精灵
	Sprite *Sprite
	// Anim 要播放的动画
	Anim AnimID
	// Delay 安装动画前等待的帧数
	Delay int

	engine *Engine
	state  taskState

	savedBattler  int
	savedSpecies  int
	savedMirrored bool
}

// Update 推进任务一帧
//
// 返回：
//   - bool: 动画已结束、任务已恢复精灵时返回 true
func (t *Task) Update() bool {
	switch t.state {
	case taskPending:
		if t.Delay > 0 {
			t.Delay--
			return false
		}
		if err := t.start(); err != nil {
			log.Printf("[MonAnim] Delayed launch failed: %v", err)
		}
		return t.poll()
	case taskRunning:
		return t.poll()
	default:
		return true
	}
}

// Done 任务是否已结束
func (t *Task) Done() bool {
	return t.state == taskDone
}

// Pending 是否还在等待启动延迟
func (t *Task) Pending() bool {
	return t.state == taskPending
}

func (t *Task) start() error {
	s := t.Sprite
	t.savedBattler = s.BattlerID
	t.savedSpecies = s.SpeciesID
	// 运行中的任务已经强制过非镜像，沿用它记下的原值
	if !s.mirrorForced {
		s.mirrorForced = true
		s.mirroredBeforeTask = s.Mirrored
	}
	t.savedMirrored = s.mirroredBeforeTask
	s.Mirrored = false
	t.state = taskRunning
	return t.engine.install(s, t.Anim, false)
}

func (t *Task) poll() bool {
	if !t.engine.IsAnimationComplete(t.Sprite) {
		return false
	}
	t.restore()
	if t.engine.Verbose {
		log.Printf("[MonAnim] Task for battler %d (%s) done", t.Sprite.BattlerID, t.Anim)
	}
	return true
}

// Abandon 不等动画结束，立即恢复精灵的身份和镜像设置
// 宿主丢弃仍在运行的任务前调用；等待延迟或已结束的任务不受影响。
func (t *Task) Abandon() {
	if t.state == taskRunning {
		t.restore()
	}
}

func (t *Task) restore() {
	s := t.Sprite
	s.BattlerID = t.savedBattler
	s.SpeciesID = t.savedSpecies
	s.Mirrored = t.savedMirrored
	s.mirrorForced = false
	t.state = taskDone
}

// LaunchFront 在战斗中启动正面动画
//
// 动画当帧即被安装，之后宿主每帧 Step 精灵并 Update 任务。
//
// 参数：
//   - s: 目标精灵
//   - id: 动画编号
//
// 返回：
//   - *Task: 托管任务；编号非法时任务已处于可结束状态
//   - error: 编号非法时返回 *InvalidAnimationIDError
func (e *Engine) LaunchFront(s *Sprite, id AnimID) (*Task, error) {
	t := &Task{Sprite: s, Anim: id, engine: e}
	return t, t.start()
}

// LaunchFrontDelayed 等待 delay 帧后再启动正面动画
//
// 物种表里带启动延迟的宝可梦使用这个入口，编号在调用时就检查。
func (e *Engine) LaunchFrontDelayed(s *Sprite, id AnimID, delay int) (*Task, error) {
	if delay <= 0 || (!id.Valid() && id != AnimNone) {
		return e.LaunchFront(s, id)
	}
	return &Task{Sprite: s, Anim: id, Delay: delay, engine: e}, nil
}

// LaunchBack 在战斗中启动背面动画
//
// 通过 Natures 查询精灵所属宝可梦的性格得到修正值，再从动画组中选出具体变体。
// Natures 为 nil 或查询失败时使用修正值 0；动画组未定义时精灵保持静止。
//
// 参数：
//   - s: 目标精灵，BattlerID 需已设置
//   - set: 背视动画组
//
// 返回：
//   - *Task: 托管任务
//   - error: 动画组未定义时返回 ErrInvalidBackAnimSet
func (e *Engine) LaunchBack(s *Sprite, set BackAnimSet) (*Task, error) {
	modifier := e.backModifier(s.BattlerID)
	id := Resolve(set, modifier)
	var err error
	if id == AnimNone {
		err = fmt.Errorf("%w: %d", ErrInvalidBackAnimSet, int(set))
		log.Printf("[MonAnim] Warning: %v, sprite stays static", err)
	}
	t := &Task{Sprite: s, Anim: id, engine: e}
	if startErr := t.start(); startErr != nil {
		log.Printf("[MonAnim] Back launch failed: %v", startErr)
		if err == nil {
			err = startErr
		}
	}
	return t, err
}

// backModifier 查询战斗位置上宝可梦的性格修正值
func (e *Engine) backModifier(battlerID int) int {
	if e.Natures == nil {
		return 0
	}
	nature, err := e.Natures.NatureOf(battlerID)
	if err != nil {
		log.Printf("[MonAnim] Warning: nature lookup for battler %d failed: %v", battlerID, err)
		return 0
	}
	m, err := e.NatureMods.Modifier(nature)
	if err != nil {
		log.Printf("[MonAnim] Warning: %v", err)
		return 0
	}
	return m
}
