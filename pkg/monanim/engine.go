package monanim

import (
	"log"

	"github.com/decker502/monanim/internal/palette"
)

// PaletteBlender 动画调色使用的调色板接口
// *palette.Buffer 实现了该接口
type PaletteBlender interface {
	BlendPalette(offset, count, coeff int, target palette.Color)
}

// NatureLookup 按战斗位置查询宝可梦性格，由宿主提供
type NatureLookup interface {
	NatureOf(battlerID int) (Nature, error)
}

// Engine 精灵变换动画引擎
//
// 引擎本身不持有精灵，宿主每帧对每个精灵调用一次 Step。
// 同一个引擎的所有调用必须在同一个 goroutine 中进行（上下文槽池不加锁）。
type Engine struct {
	// Pool 部分动画跨帧保存参数的上下文槽
	Pool *Pool
	// Palette 调色动画写入的调色板，为 nil 时调色动画只推进计时
	Palette PaletteBlender
	// Natures 背视动画查询性格用，为 nil 时 LaunchBack 使用修正值 0
	Natures NatureLookup
	// NatureMods 性格到背视动画修正值的映射
	NatureMods NatureTable

	// Strict 为 true 时非法动画编号直接 panic，否则记录日志并退化为静态精灵
	Strict bool
	// Verbose 打印动画启动和结束日志
	Verbose bool
}

// NewEngine 创建动画引擎
//
// 参数：
//   - pool: 上下文槽池，为 nil 时创建 DefaultPoolSize 大小的池
//   - blender: 调色板，可为 nil
//
// 返回：
//   - *Engine: 使用默认性格修正表的引擎
func NewEngine(pool *Pool, blender PaletteBlender) *Engine {
	if pool == nil {
		pool = NewPool(DefaultPoolSize)
	}
	return &Engine{
		Pool:       pool,
		Palette:    blender,
		NatureMods: DefaultNatureTable,
	}
}

// Step 推进精灵一帧
//
// 运行中的动画执行一步；变换结束后等待帧动画播完，再进入终止状态。
// 终止状态的精灵调用 Step 不做任何事。
func (e *Engine) Step(s *Sprite) {
	switch s.callback {
	case callbackAnim:
		run := s.run
		f := frame{engine: e, sprite: s, run: run}
		run.state.step(&f)
		if s.callback != callbackAnim {
			e.settle(s, run)
		}
	case callbackWaitAnimEnd:
		if s.FrameAnimEnded {
			s.callback = callbackDummy
		}
	}
}

// IsAnimationComplete 精灵是否已进入终止状态
func (e *Engine) IsAnimationComplete(s *Sprite) bool {
	return s.callback == callbackDummy
}

// LaunchSummary 以图鉴模式直接启动动画
//
// 不创建托管任务，也不改动 Mirrored，调用方自行每帧 Step 直到
// IsAnimationComplete 返回 true。仿射结束时释放矩阵，用 HFlip 保持朝向。
//
// 参数：
//   - s: 目标精灵
//   - id: 动画编号
//
// 返回：
//   - error: 编号非法时返回 *InvalidAnimationIDError，精灵保持静止
func (e *Engine) LaunchSummary(s *Sprite, id AnimID) error {
	return e.install(s, id, true)
}

// ResetToNeutral 强制结束动画并把精灵恢复到中性状态
//
// 偏移归零、仿射恢复单位参数、重新显示，碰过的调色板恢复原色。
func (e *Engine) ResetToNeutral(s *Sprite) {
	run := s.run
	if run != nil && s.callback == callbackAnim {
		if run.paletteOffset >= 0 && e.Palette != nil {
			e.Palette.BlendPalette(run.paletteOffset, palette.ColorsPerPalette, 0, palette.Black)
		}
		if run.affineStarted {
			s.applyAffine(neutralAffine(s))
		}
	}
	e.halt(s)
	s.X2, s.Y2 = 0, 0
	s.Invisible = false
}

// Stop 立即进入终止状态，偏移保留最后写入的值
func (e *Engine) Stop(s *Sprite) {
	e.halt(s)
}

func (e *Engine) install(s *Sprite, id AnimID, summary bool) error {
	if id == AnimNone {
		e.halt(s)
		return nil
	}
	if !id.Valid() {
		err := &InvalidAnimationIDError{ID: id}
		if e.Strict {
			panic(err)
		}
		log.Printf("[MonAnim] Warning: %v, sprite stays static", err)
		e.halt(s)
		return err
	}

	if s.callback == callbackAnim && e.Verbose {
		log.Printf("[MonAnim] %s replaces running %s", id, s.run.id)
	}
	e.releaseSlots(s.run)
	s.run = &activeAnim{
		id:            id,
		state:         catalog[id].newState(),
		summary:       summary,
		paletteOffset: -1,
	}
	s.callback = callbackAnim
	if e.Verbose {
		log.Printf("[MonAnim] Launch %s (summary=%v, mirrored=%v)", id, summary, s.Mirrored)
	}
	return nil
}

// halt 进入终止状态并释放槽位
func (e *Engine) halt(s *Sprite) {
	e.releaseSlots(s.run)
	s.callback = callbackDummy
}

// settle 动画结束时统一归位
func (e *Engine) settle(s *Sprite, run *activeAnim) {
	s.X2, s.Y2 = 0, 0
	if run.affineStarted {
		s.applyAffine(neutralAffine(s))
	}
	e.releaseSlots(run)
	if e.Verbose {
		log.Printf("[MonAnim] %s finished", run.id)
	}
}

func (e *Engine) releaseSlots(run *activeAnim) {
	if run == nil {
		return
	}
	for _, c := range run.slots {
		e.Pool.release(c)
	}
	run.slots = nil
}

// neutralAffine 当前朝向下的单位仿射参数
func neutralAffine(s *Sprite) AffineParams {
	p := IdentityAffine
	if s.Mirrored {
		p.XScale = -p.XScale
	}
	return p
}
