package monanim

import "github.com/decker502/monanim/pkg/utils"

// 只改写位置偏移的动画

// horizontalVibrate 水平高频抖动，40 帧
type horizontalVibrate struct {
	amplitude int
	timer     int
}

func (a *horizontalVibrate) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if a.timer > 40 {
		f.finish()
		f.setX(0)
	} else {
		f.setX(utils.Sin((a.timer*128/40)%256, a.amplitude) * alternate(a.timer))
	}
	a.timer++
}

// horizontalSlide 水平往返滑动一次
type horizontalSlide struct {
	duration int
	timer    int
}

func (a *horizontalSlide) step(f *frame) {
	f.tryFlipX()
	if a.timer > a.duration {
		f.finish()
		f.setX(0)
	} else {
		f.setX(utils.Sin((a.timer*384/a.duration)%256, 6))
	}
	a.timer++
	f.tryFlipX()
}

// verticalSlide 垂直往返滑动一次
type verticalSlide struct {
	duration int
	timer    int
}

func (a *verticalSlide) step(f *frame) {
	f.tryFlipX()
	if a.timer > a.duration {
		f.finish()
		f.setY(0)
	} else {
		f.setY(-utils.Sin((a.timer*384/a.duration)%256, 6))
	}
	a.timer++
	f.tryFlipX()
}

// verticalJumps 两小跳接两大跳
type verticalJumps struct {
	height  int
	counter int
}

func (a *verticalJumps) step(f *frame) {
	counter := a.counter
	if counter > 384 {
		f.finish()
		f.setX(0)
		f.setY(0)
	} else {
		switch counter / 128 {
		case 0, 1:
			f.setY(-utils.Sin(counter%128, a.height*2))
		case 2, 3:
			counter -= 256
			f.setY(-utils.Sin(counter, a.height*3))
		}
	}
	a.counter += 12
}

// verticalJumpsHorizontalJumps 原地两跳，再向左右各跳一次
type verticalJumpsHorizontalJumps struct {
	counter int
}

func (a *verticalJumpsHorizontalJumps) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	counter := a.counter
	if counter > 768 {
		f.finish()
		f.setX(0)
		f.setY(0)
	} else {
		switch counter / 128 {
		case 0, 1:
			f.setX(0)
		case 2:
			counter = 0
		case 3:
			f.setX(-(counter % 128 * 8) / 128)
		case 4:
			f.setX(counter%128/8 - 8)
		case 5:
			f.setX(-(counter % 128 * 8) / 128 + 8)
		}
		f.setY(-utils.Sin(counter%128, 8))
	}
	a.counter += 12
}

// zigzagLegs 之字形每段的 dx、dy、帧数，帧数为 0 表示结束
var zigzagLegs = [][3]int{
	{-1, -1, 6},
	{2, 0, 6},
	{-2, 2, 6},
	{2, 0, 6},
	{-2, -2, 6},
	{2, 0, 6},
	{-2, 2, 6},
	{2, 0, 6},
	{-1, -1, 6},
	{0, 0, 0},
}

// zigzag 按 zigzagLegs 逐段移动
type zigzag struct {
	leg   int
	timer int
}

func (a *zigzag) step(f *frame) {
	f.tryFlipX()
	if a.timer == 0 {
		a.leg = 0
	}
	if zigzagLegs[a.leg][2] == a.timer {
		if zigzagLegs[a.leg][2] == 0 {
			f.finish()
		} else {
			a.leg++
			a.timer = 0
		}
	}
	if zigzagLegs[a.leg][2] == 0 {
		f.finish()
		return
	}
	f.setX(f.x() + zigzagLegs[a.leg][0])
	f.setY(f.y() + zigzagLegs[a.leg][1])
	a.timer++
	f.tryFlipX()
}

// zigzagSlow 隔帧推进的之字形
type zigzagSlow struct {
	skip  int
	inner zigzag
}

func (a *zigzagSlow) step(f *frame) {
	if a.inner.timer == 0 {
		a.skip = 0
	}
	if a.skip <= 0 {
		a.inner.step(f)
		a.skip = 1
	} else {
		a.skip--
	}
}

// horizontalShake 水平晃动 9 个周期
type horizontalShake struct {
	speed     int
	amplitude int
	counter   int
}

func (a *horizontalShake) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if a.counter > 2304 {
		f.finish()
		f.setX(0)
	} else {
		f.setX(utils.Sin(a.counter%256, a.amplitude))
	}
	a.counter += a.speed
}

// verticalShake 垂直晃动 9 个周期
type verticalShake struct {
	speed   int
	counter int
}

func (a *verticalShake) step(f *frame) {
	if a.counter > 2304 {
		f.finish()
		f.setY(0)
	} else {
		f.setY(utils.Sin(a.counter%256, 3))
	}
	a.counter += a.speed
}

// verticalShakeBack 向下沉的垂直晃动（背视用）
type verticalShakeBack struct {
	speed     int
	amplitude int
	counter   int
}

func (a *verticalShakeBack) step(f *frame) {
	if a.counter > 2304 {
		f.finish()
		f.setY(0)
	} else {
		f.setY(utils.Sin((a.counter+192)%256, a.amplitude) + a.amplitude)
	}
	a.counter += a.speed
}

// circularVibrate 振幅先增后减的圆周抖动
type circularVibrate struct {
	timer int
}

func (a *circularVibrate) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if a.timer > 512 {
		f.finish()
		f.setX(0)
		f.setY(0)
	} else {
		sign := alternate(a.timer)
		amplitude := utils.Sin(a.timer/4, 8)
		index := a.timer % 256
		f.setY(utils.Sin(index, amplitude) * sign)
		f.setX(utils.Cos(index, amplitude) * sign)
	}
	a.timer += 9
}

// circleCounterclockwise 逆时针绕圈，参数保存在上下文槽
type circleCounterclockwise struct {
	rotation int
	radius   int
	speed    int

	slot  *ContextSlot
	timer int
}

func (a *circleCounterclockwise) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Rotation = a.rotation
		a.slot.Data = a.radius
		a.slot.Speed = a.speed
	}
	f.tryFlipX()
	if a.timer > a.slot.Rotation {
		f.setX(0)
		f.setY(0)
		f.finish()
	} else {
		index := (a.timer + 192) % 256
		f.setX(-utils.Cos(index, a.slot.Data*2))
		f.setY(utils.Sin(index, a.slot.Data) + a.slot.Data)
		a.timer += a.slot.Speed
	}
	f.tryFlipX()
}

// horizontalJumps 左右各跳一次
type horizontalJumps struct {
	counter int
}

func (a *horizontalJumps) step(f *frame) {
	f.tryFlipX()
	counter := a.counter
	if counter > 512 {
		f.finish()
		f.setX(0)
		f.setY(0)
	} else {
		switch counter / 128 {
		case 0:
			f.setX(-(counter % 128 * 8) / 128)
		case 1:
			f.setX(counter%128/16 - 8)
		case 2:
			f.setX(counter % 128 / 16)
		case 3:
			f.setX(-(counter % 128 * 8) / 128 + 8)
		}
		f.setY(-utils.Sin(counter%128, 8))
	}
	a.counter += 12
	f.tryFlipX()
}

// rapidHorizontalHops 左右快速小跳
type rapidHorizontalHops struct {
	timer int
}

func (a *rapidHorizontalHops) step(f *frame) {
	f.tryFlipX()
	if a.timer > 2048 {
		f.finish()
		f.setY(0)
	} else {
		switch (a.timer / 512) % 4 {
		case 0:
			f.setX(-(a.timer % 512 * 16) / 512)
		case 1:
			f.setX(a.timer%512/32 - 16)
		case 2:
			f.setX(a.timer % 512 / 32)
		case 3:
			f.setX(-(a.timer % 512 * 16) / 512 + 16)
		}
		f.setY(-utils.Sin(a.timer%128, 4))
		a.timer += 24
	}
	f.tryFlipX()
}

// verticalShakeHorizontalSlide 上下抖动着左右滑动
type verticalShakeHorizontalSlide struct {
	speed   int
	yPeriod int
	timer   int
}

func (a *verticalShakeHorizontalSlide) step(f *frame) {
	f.tryFlipX()
	if a.timer > 2048 {
		f.finish()
		f.setY(0)
	} else {
		switch (a.timer / 512) % 4 {
		case 0:
			f.setX(a.timer % 512 / 32)
		case 2:
			f.setX(-(a.timer % 512 * 16) / 512)
		case 1:
			f.setX(-(a.timer % 512 * 16) / 512 + 16)
		case 3:
			f.setX(a.timer%512/32 - 16)
		}
		f.setY(utils.Sin(a.timer%a.yPeriod, 4))
		a.timer += a.speed
	}
	f.tryFlipX()
}

// fourPetal 沿四片花瓣的轨迹移动
type fourPetal struct {
	started bool
	petal   int
	index   int
}

func (a *fourPetal) step(f *frame) {
	f.tryFlipX()
	if !a.started {
		a.started = true
		a.petal = 0
		a.index = 64
	}
	a.index += 8
	if a.petal == 4 {
		if a.index > 63 {
			a.index = 0
			a.petal++
		}
	} else if a.index > 127 {
		a.index = 0
		a.petal++
	}

	switch a.petal {
	case 1:
		f.setX(-utils.Cos(a.index, 8))
		f.setY(utils.Sin(a.index, 8) - 8)
	case 2:
		f.setX(utils.Sin(a.index+128, 8) + 8)
		f.setY(-utils.Cos(a.index, 8))
	case 3:
		f.setX(utils.Cos(a.index, 8))
		f.setY(utils.Sin(a.index+128, 8) + 8)
	case 0, 4:
		f.setX(utils.Sin(a.index, 8) - 8)
		f.setY(utils.Cos(a.index, 8))
	default:
		f.setX(0)
		f.setY(0)
		f.finish()
	}
	f.tryFlipX()
}

// vibrateToCorners 向对角交替抖动
type vibrateToCorners struct {
	timer int
}

func (a *vibrateToCorners) step(f *frame) {
	f.tryFlipX()
	if a.timer > 40 {
		f.finish()
		f.setX(0)
		f.setY(0)
	} else {
		amplitude := utils.Sin((a.timer*128/40)%256, 16) * alternate(a.timer)
		if (a.timer%4)/2 == 0 {
			f.setX(amplitude)
			f.setY(-amplitude)
		} else {
			f.setX(-amplitude)
			f.setY(-amplitude)
		}
	}
	a.timer++
	f.tryFlipX()
}

// concaveArc 向下凹的弧线往返
type concaveArc struct {
	runs  int
	xAmp  int
	yAmp  int
	speed int
	index int
}

func (a *concaveArc) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if a.index > 255 {
		if a.runs <= 1 {
			f.setX(0)
			f.setY(0)
			f.finish()
		} else {
			a.index %= 256
			a.runs--
		}
		return
	}
	f.setX(-utils.Sin(a.index, a.xAmp))
	y := utils.Sin((a.index+192)%256, a.yAmp)
	if y > 0 {
		y = -y
	}
	f.setY(y + a.yAmp)
	a.index += a.speed
}

// convexDoubleArc 向上凸的双弧，奇偶趟方向相反
type convexDoubleArc struct {
	runs  int
	xAmp  int
	leg   int
	speed int
	index int
}

func (a *convexDoubleArc) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if a.index > 256 {
		if a.runs <= a.leg {
			f.finish()
		} else {
			a.leg++
			a.index = 0
		}
		f.setX(0)
		f.setY(0)
		return
	}

	if a.index > 159 {
		if a.index > 256 {
			a.index = 256
		}
		f.setY(-utils.Sin(a.index%256, 8))
	} else if a.index > 95 {
		f.setY(utils.Sin(96, 6) - utils.Sin((a.index-96)*2, 4))
	} else {
		f.setY(utils.Sin(a.index, 6))
	}

	x := -utils.Sin(a.index/2, a.xAmp)
	if a.leg%2 == 0 {
		x = -x
	}
	f.setX(x)
	a.index += a.speed
}

// triangleLegs 三角形轨迹每段的 dx、dy、帧数
var triangleLegs = [][3]int{
	{1, 1, 12},
	{-2, 0, 12},
	{1, -1, 12},
	{0, 0, 0},
}

// triangleDown 沿倒三角移动，divisor 越大步子越大、用时越短
type triangleDown struct {
	divisor int
	runs    int
	leg     int
	timer   int
}

func (a *triangleDown) step(f *frame) {
	f.tryFlipX()
	if a.timer == 0 {
		a.leg = 0
	}
	if triangleLegs[a.leg][2]/a.divisor == a.timer {
		a.leg++
		a.timer = 0
	}
	if triangleLegs[a.leg][2]/a.divisor == 0 {
		a.runs--
		if a.runs == 0 {
			f.finish()
		} else {
			a.timer = 0
		}
		return
	}
	f.setX(f.x() + triangleLegs[a.leg][0]*a.divisor)
	f.setY(f.y() + triangleLegs[a.leg][1]*a.divisor)
	a.timer++
	f.tryFlipX()
}

// shakeRow 衰减抖动的一段：振幅和帧数
// amplitude 为 -1 表示结束，-2 表示静止一段
type shakeRow struct {
	amplitude int
	frames    int
}

var verticalShakeRows = []shakeRow{
	{6, 30},
	{-2, 15},
	{6, 30},
	{-1, 0},
}

// verticalShakeTwice 两段衰减的垂直抖动，中间停顿
type verticalShakeTwice struct {
	speed int
	row   int
	count int
	phase int
}

func (a *verticalShakeTwice) step(f *frame) {
	row := verticalShakeRows[a.row]
	if row.amplitude == -1 {
		f.setY(0)
		f.finish()
		return
	}
	amplitude := 0
	if row.amplitude != -2 {
		amplitude = (row.frames - a.count) * row.amplitude / row.frames
	}
	f.setY(utils.Sin(a.phase&0xFF, amplitude))
	if a.count == row.frames {
		a.row++
		a.count = 0
	} else {
		a.phase += a.speed
		a.count++
	}
}

// verticalShakeLowTwice 向下沉的两段衰减抖动，振幅取自 amplitude
type verticalShakeLowTwice struct {
	speed     int
	amplitude int
	row       int
	count     int
	phase     int
}

func (a *verticalShakeLowTwice) step(f *frame) {
	row := verticalShakeRows[a.row]
	if row.amplitude == -1 {
		f.setY(0)
		f.finish()
		return
	}
	amplitude := 0
	if row.amplitude != -2 {
		amplitude = (row.frames - a.count) * a.amplitude / row.frames
	}
	f.setY(utils.Sin((a.phase&0xFF+192)%256, amplitude) + amplitude)
	if a.count == row.frames {
		a.row++
		a.count = 0
	} else {
		a.phase += a.speed
		a.count++
	}
}
