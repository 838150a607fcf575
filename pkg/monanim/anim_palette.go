package monanim

import (
	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/utils"
)

// glowColor 调色板向指定颜色渐亮再恢复
type glowColor struct {
	color    palette.Color
	coeffMax int
	speed    int
	timer    int
}

func (a *glowColor) step(f *frame) {
	if a.timer == 0 {
		f.initPalette()
	}
	if a.timer > 128 {
		f.blend(0, a.color)
		f.finish()
	} else {
		f.blend(utils.Sin(a.timer, a.coeffMax), a.color)
	}
	a.timer += a.speed
}

// flashStep 闪烁表的一行：是否染黄、持续帧数
type flashStep struct {
	yellow bool
	frames int
}

// flashEnd 表尾标记
const flashEnd = -1

var flashYellowSteps = []flashStep{
	{false, 5}, {true, 1}, {false, 15}, {true, 4},
	{false, 2}, {true, 2}, {false, 2}, {true, 2},
	{false, 2}, {true, 2}, {false, 2}, {true, 2},
	{false, 2}, {false, flashEnd},
}

var shakeFlashYellowSteps = [3][]flashStep{
	{
		{false, 1}, {true, 2}, {false, 15}, {true, 1},
		{false, 15}, {true, 1}, {false, 15}, {true, 1},
		{false, 1}, {true, 1}, {false, 1}, {true, 1},
		{false, 1}, {true, 1}, {false, 1}, {true, 1},
		{false, 1}, {true, 1}, {false, 1}, {false, flashEnd},
	},
	flashYellowSteps,
	{
		{false, 1}, {true, 1}, {false, 20}, {true, 1},
		{false, 20}, {true, 1}, {false, 20}, {true, 1},
		{false, 1}, {false, flashEnd},
	},
}

// flashSequence 按闪烁表切换调色板
type flashSequence struct {
	steps   []flashStep
	row     int
	count   int
	pending bool
}

// advance 推进一帧，表走完时返回 true
func (q *flashSequence) advance(f *frame) bool {
	cur := q.steps[q.row]
	if cur.frames == flashEnd {
		return true
	}
	if q.pending {
		if cur.yellow {
			f.blend(16, palette.Yellow)
		} else {
			f.blend(0, palette.Yellow)
		}
		q.pending = false
	}
	if cur.frames == q.count {
		q.pending = true
		q.count = 0
		q.row++
	} else {
		q.count++
	}
	return false
}

type flashYellow struct {
	seq flashSequence
}

func newFlashYellow() *flashYellow {
	return &flashYellow{seq: flashSequence{steps: flashYellowSteps}}
}

func (a *flashYellow) step(f *frame) {
	if a.seq.advance(f) {
		f.finish()
	}
}

// shakeFlashYellow 每三帧左右换边，同时按表闪黄
type shakeFlashYellow struct {
	seq       flashSequence
	amplitude int
	hold      int
}

func newShakeFlashYellow(speed int) *shakeFlashYellow {
	return &shakeFlashYellow{
		seq:       flashSequence{steps: shakeFlashYellowSteps[speed]},
		amplitude: 1,
	}
}

func (a *shakeFlashYellow) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	f.setX(a.amplitude)
	if a.hold > 1 {
		a.amplitude = -a.amplitude
		a.hold = 0
	} else {
		a.hold++
	}
	if a.seq.advance(f) {
		f.setX(0)
		f.finish()
	}
}

// shakeGlow 调色板正弦发光，后半段左右晃动
type shakeGlow struct {
	color  palette.Color
	period int
	runs   int

	timer int
	shook int
	index int
}

func (a *shakeGlow) step(f *frame) {
	if a.timer == 0 {
		f.initPalette()
	}
	if a.timer%2 == 0 {
		if a.timer > 127 {
			f.blend(0, palette.Red)
			f.finish()
		} else {
			f.blend(utils.Sin(a.timer, 12), a.color)
		}
	}
	if a.timer >= (128-a.period*a.runs)/2 {
		a.move(f)
	}
	a.timer++
}

func (a *shakeGlow) move(f *frame) {
	if a.shook >= a.runs {
		return
	}
	f.tryFlipX()
	if a.index > a.period {
		a.shook++
		if a.shook < a.runs {
			a.index = 0
		}
		f.setX(0)
	} else {
		sign := 1 - a.shook%2*2
		f.setX(sign * utils.Sin((a.index*384/a.period)%256, 6))
		a.index++
	}
	f.tryFlipX()
}

// flicker 每三帧切换一次可见性，共 20 次
type flicker struct {
	wait    int
	hidden  bool
	toggles int
}

func (a *flicker) step(f *frame) {
	if a.wait > 0 {
		a.wait--
		return
	}
	a.hidden = !a.hidden
	f.sprite.Invisible = a.hidden
	a.toggles++
	if a.toggles > 19 {
		f.sprite.Invisible = false
		f.finish()
	}
	a.wait = 2
}

// flickerIncreasing 隐藏时间逐次加长的闪烁
type flickerIncreasing struct {
	shown  int
	hidden int
}

func (a *flickerIncreasing) step(f *frame) {
	if a.shown == a.hidden {
		a.hidden = 0
		a.shown++
		f.sprite.Invisible = false
	} else {
		a.hidden++
		f.sprite.Invisible = true
	}
	if a.shown > 10 {
		f.sprite.Invisible = false
		f.finish()
	}
}
