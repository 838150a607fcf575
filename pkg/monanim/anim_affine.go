package monanim

import "github.com/decker502/monanim/pkg/utils"

// 单阶段的缩放/旋转动画

// circularStretchTwice 横竖交替拉伸两圈
type circularStretchTwice struct {
	timer int
}

func (a *circularStretchTwice) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 40 {
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		index := (a.timer * 512 / 40) % 256
		f.setAffine(utils.Sin(index, 32)+256, utils.Cos(index, 32)+256, 0)
	}
	a.timer++
}

// growVibrate 忽大忽小地抖动
type growVibrate struct {
	timer int
}

func (a *growVibrate) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 40 {
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		index := (a.timer * 256 / 40) % 256
		amplitude := 8
		if a.timer%2 == 0 {
			amplitude = 32
		}
		scale := utils.Sin(index, amplitude) + 256
		f.setAffine(scale, scale, 0)
	}
	a.timer++
}

// horizontalStretch 横向拉伸，中段带细颤
type horizontalStretch struct {
	timer  int
	wobble int
}

func (a *horizontalStretch) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 40 {
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		index1 := 0
		index2 := a.timer * 128 / 40
		if a.timer >= 10 && a.timer <= 29 {
			a.wobble += 51
			index1 = a.wobble & 0xFF
		}

		var xScale int
		if f.sprite.Mirrored {
			xScale = (utils.Sin(index2, 40) - 256) + utils.Sin(index1, 16)
		} else {
			xScale = (256 - utils.Sin(index2, 40)) - utils.Sin(index1, 16)
		}
		f.setAffineRaw(xScale, utils.Sin(index2, 16)+256, 0)
	}
	a.timer++
}

// verticalStretch 纵向拉伸，底边保持贴地
type verticalStretch struct {
	timer  int
	wobble int
}

func (a *verticalStretch) step(f *frame) {
	posY := 0
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 40 {
		f.identity()
		f.resetAfterAnim()
		f.finish()
		f.setY(posY)
	} else {
		index1 := 0
		index2 := a.timer * 128 / 40
		if a.timer >= 10 && a.timer <= 29 {
			a.wobble += 51
			index1 = a.wobble & 0xFF
		}

		var xScale int
		if f.sprite.Mirrored {
			xScale = -utils.Sin(index2, 16) - 256
		} else {
			xScale = utils.Sin(index2, 16) + 256
		}
		yScale := (256 - utils.Sin(index2, 40)) - utils.Sin(index1, 8)
		if yScale != 256 {
			posY = (256 - yScale) / 8
		}
		f.setY(-posY)
		f.setAffineRaw(xScale, yScale, 0)
	}
	a.timer++
}

// tipMoveForward 前倾、前移、再立起
type tipMoveForward struct {
	timer int
}

func (a *tipMoveForward) step(f *frame) {
	f.tryFlipX()
	counter := a.timer
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 35 {
		f.identity()
		f.resetAfterAnim()
		f.finish()
		f.setX(0)
	} else {
		switch {
		case counter < 10:
			f.setAffine(256, 256, counter/2*512)
		case counter < 30:
			f.setX(-utils.Sin(((counter-10)*128)/20, 5))
		default:
			f.setAffine(256, 256, (35-counter)/2*1024)
		}
	}
	a.timer++
	f.tryFlipX()
}

// horizontalPivot 以底边为轴左右摆动
type horizontalPivot struct {
	timer int
}

func (a *horizontalPivot) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 100 {
		f.identity()
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		index := a.timer * 256 / 100
		f.setY(utils.Sin(index, 10))
		f.setAffine(256, 256, utils.Sin(index, 3276))
	}
	a.timer++
}

// wobbleRotation 摇摆类动画共用的旋转量
func wobbleRotation(timer int) int {
	return utils.Sin(((timer*512)/100)&0xFF, 3276)
}

// verticalSlideWobble 上下滑动时左右摇摆
type verticalSlideWobble struct {
	amplitude int
	timer     int
}

func (a *verticalSlideWobble) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 100 {
		f.identity()
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		index := a.timer * 256 / 100
		f.setY(utils.Sin(index, a.amplitude))
		f.setAffine(256, 256, wobbleRotation(a.timer))
	}
	a.timer++
}

// risingWobble 上升时左右摇摆
type risingWobble struct {
	amplitude int
	timer     int
}

func (a *risingWobble) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > 100 {
		f.identity()
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		index := a.timer * 256 / 100
		f.setY(-utils.Sin(index/2, a.amplitude*2))
		f.setAffine(256, 256, wobbleRotation(a.timer))
	}
	a.timer++
}

// horizontalSlideWobble 横向滑动时摇摆
type horizontalSlideWobble struct {
	timer int
}

func (a *horizontalSlideWobble) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	f.tryFlipX()
	if a.timer > 100 {
		f.identity()
		f.setX(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		index := a.timer * 256 / 100
		f.setX(utils.Sin(index, 8))
		f.setAffine(256, 256, wobbleRotation(a.timer))
	}
	a.timer++
	f.tryFlipX()
}

// verticalSquishBounce 压扁后弹起
type verticalSquishBounce struct {
	duration int
	timer    int
	bounce   int
	phase    int
}

func (a *verticalSquishBounce) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
		a.bounce = 0
	}
	f.tryFlipX()
	if a.timer > a.duration*3 {
		f.identity()
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		yScale := utils.Sin(a.phase, 32) + 256
		if a.timer > a.duration && a.timer < a.duration*2 {
			a.bounce += 128 / a.duration
		}
		posY := 0
		if yScale > 256 {
			posY = (256 - yScale) / 8
		}
		f.setY(-utils.Sin(a.bounce, 10) - posY)
		f.setAffine(256-utils.Sin(a.phase, 32), yScale, 0)
		a.timer++
		a.phase = (a.phase + 128/a.duration) & 0xFF
	}
	f.tryFlipX()
}

// shrinkGrow 多次缩放脉动
type shrinkGrow struct {
	runs  int
	speed int
	timer int
	phase int
}

func (a *shrinkGrow) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > (128/a.speed)*a.runs {
		f.identity()
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		yScale := utils.Sin(a.phase, 32) + 256
		posY := 0
		if yScale > 256 {
			posY = (256 - yScale) / 8
		}
		f.setY(-posY)
		f.setAffine(utils.Sin(a.phase, 48)+256, yScale, 0)
		a.timer++
		a.phase = (a.phase + a.speed) & 0xFF
	}
}

// twist 原地扭动，参数保存在上下文槽，可重复
type twist struct {
	rotation int
	runs     int

	slot  *ContextSlot
	timer int
}

func (a *twist) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Rotation = a.rotation
		a.slot.Runs = a.runs
	}
	if a.slot.Delay != 0 {
		a.slot.Delay--
		return
	}
	if a.timer == 0 && a.slot.Data == 0 {
		f.startAffine()
		a.slot.Data++
	}
	if a.timer > a.slot.Rotation {
		f.identity()
		if a.slot.Runs > 1 {
			a.slot.Runs--
			a.slot.Delay = 10
			a.timer = 0
		} else {
			f.resetAfterAnim()
			f.finish()
		}
	} else {
		f.setAffine(256, 256, utils.Sin(a.timer%256, 4096))
	}
	a.timer += 16
}

// spin 原地自转一圈
type spin struct {
	duration int
	divisor  int

	slot  *ContextSlot
	timer int
}

func (a *spin) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Delay = a.duration
		a.slot.Data = a.divisor
	}
	if a.timer == 0 {
		f.startAffine()
	}
	if a.timer > a.slot.Delay {
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		f.setAffine(256, 256, (65536/a.slot.Data)*a.timer)
	}
	a.timer++
}

// swing 荡秋千式摆动，convex 决定弧线凹凸
type swing struct {
	duration int
	runs     int
	convex   bool

	slot  *ContextSlot
	timer int
}

func (a *swing) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Data = a.duration
		a.slot.Runs = a.runs
	}
	if a.timer == 0 {
		f.startAffine()
	}
	f.tryFlipX()
	if a.timer > a.slot.Data {
		f.identity()
		f.setX(0)
		if a.slot.Runs > 1 {
			a.slot.Runs--
			a.timer = 0
		} else {
			f.resetAfterAnim()
			f.finish()
		}
	} else {
		index := a.timer * 256 / a.slot.Data
		f.setX(-utils.Sin(index, 10))
		rotation := utils.Sin(index, 3276)
		if a.convex {
			rotation = -rotation
		}
		f.setAffine(256, 256, rotation)
	}
	a.timer++
	f.tryFlipX()
}

// rotateToSides 左右倾斜，参数保存在上下文槽
type rotateToSides struct {
	speed int
	runs  int

	slot    *ContextSlot
	started bool
	index   int
}

func (a *rotateToSides) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Rotation = a.speed
		a.slot.Runs = a.runs
	}
	if !a.started {
		f.startAffine()
		a.started = true
	}
	f.tryFlipX()
	if a.index > 254 {
		f.setX(0)
		f.setY(0)
		f.identity()
		if a.slot.Runs > 1 {
			a.slot.Runs--
			a.started = false
			a.index = 0
		} else {
			f.resetAfterAnim()
			f.finish()
		}
	} else {
		f.setX(-utils.Sin(a.index, 16))
		f.setAffine(256, 256, utils.Sin(a.index, 32)<<8)
		a.index += a.slot.Rotation
	}
	f.tryFlipX()
}

// rotateUpToSides 左右倾斜时上抬
type rotateUpToSides struct {
	started bool
	index   int
}

func (a *rotateUpToSides) step(f *frame) {
	if !a.started {
		f.startAffine()
		a.started = true
	}
	f.tryFlipX()
	if a.index > 254 {
		f.setX(0)
		f.setY(0)
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		f.setX(-utils.Sin(a.index, 16))
		f.setY(-utils.Sin(a.index%128, 16))
		f.setAffine(256, 256, utils.Sin(a.index, 32)<<8)
		a.index += 8
	}
	f.tryFlipX()
}

// pivotShake 斜向快速颤动
type pivotShake struct {
	started bool
	index   int
}

func (a *pivotShake) step(f *frame) {
	if !a.started {
		f.startAffine()
		a.started = true
		a.index = 0
	}
	f.tryFlipX()
	if a.index > 255 {
		f.setX(0)
		f.setY(0)
		a.index = 0
		f.resetAfterAnim()
		f.finish()
	} else {
		a.index += 16
		f.setX(-utils.Sin(a.index%128, 8))
		f.setY(f.x())
	}
	f.setAffine(256, 256, utils.Sin(a.index%128, 16)<<8)
	f.tryFlipX()
}

// grow 放大后恢复，可重复
type grow struct {
	speed int
	runs  int

	started bool
	index   int
}

func (a *grow) step(f *frame) {
	f.tryFlipX()
	if !a.started {
		f.startAffine()
		a.started = true
	}
	if a.index > 255 {
		if a.runs <= 1 {
			f.resetAfterAnim()
			f.finish()
			f.identity()
		} else {
			a.runs--
			a.index = 0
		}
	} else {
		a.index += a.speed
		if a.index > 256 {
			a.index = 256
		}
		scale := utils.Sin(a.index/2, 64)
		f.setAffine(256-scale, 256-scale, 0)
	}
	f.tryFlipX()
}

// growInStages 分三级放大再缩回
type growInStages struct {
	started bool
	stage   int
	hold    int
	index   int
}

func (a *growInStages) step(f *frame) {
	f.tryFlipX()
	if !a.started {
		f.startAffine()
		a.started = true
		a.stage, a.hold, a.index = 0, 0, 0
	}

	if a.hold > 0 {
		a.hold--
		if a.stage != 3 {
			scale := utils.Sin(a.index-(8*a.hold)/20, 64)
			f.setAffine(256-scale, 256-scale, 0)
		}
		f.tryFlipX()
		return
	}

	var scale int
	if a.stage == 3 {
		if a.index > 63 {
			a.index = 64
			f.identity()
			f.resetAfterAnim()
			f.finish()
		}
		scale = utils.Cos(a.index, 64)
	} else {
		scale = utils.Sin(a.index, 64)
		switch {
		case a.index > 63:
			a.stage = 3
			a.hold = 10
			a.index = 0
		case scale > 48 && a.stage == 1:
			a.stage = 2
			a.hold = 20
		case scale > 16 && a.stage == 0:
			a.stage = 1
			a.hold = 20
		}
	}
	a.index += 2
	f.setAffine(256-scale, 256-scale, 0)
	f.tryFlipX()
}

// verticalSpring 纵向弹簧伸缩
type verticalSpring struct {
	started  bool
	repeated bool
	index    int
}

func (a *verticalSpring) step(f *frame) {
	if !a.started {
		f.startAffine()
		a.started = true
		a.index = 0
	}
	bound, amplitude := 512, 8
	if a.repeated {
		bound, amplitude = 256, 16
	}
	if a.index > bound {
		f.setY(0)
		f.identity()
		f.resetAfterAnim()
		f.finish()
		return
	}

	var yScale int
	if a.repeated {
		f.setY(utils.Sin(a.index, amplitude))
		a.index += 4
		yScale = utils.Sin((a.index%64)*2, 128)
	} else {
		f.setY(utils.Sin(a.index%256, amplitude))
		a.index += 8
		yScale = utils.Sin(a.index%128, 96)
	}
	f.setAffine(256, yScale+256, 0)
}

// horizontalSpring 横向弹簧伸缩
type horizontalSpring struct {
	speed     int
	bound     int
	amplitude int
	repeated  bool

	started bool
	index   int
}

func (a *horizontalSpring) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if !a.started {
		f.startAffine()
		a.started = true
	}
	if a.index > a.bound {
		f.setX(0)
		f.resetAfterAnim()
		f.finish()
		f.identity()
		return
	}

	f.setX(utils.Sin(a.index%256, a.amplitude))
	a.index += a.speed
	var xScale int
	if a.repeated {
		xScale = utils.Sin((a.index%64)*2, 128)
	} else {
		xScale = utils.Sin(a.index%128, 96)
	}
	f.setAffine(256+xScale, 256, 0)
}

// slideScale 滑动的同时等比缩放，两条曲线决定具体效果
type slideScale struct {
	xCurve     func(index int) int
	scaleCurve func(index int) int

	started bool
	index   int
}

func (a *slideScale) step(f *frame) {
	f.tryFlipX()
	if !a.started {
		f.startAffine()
		a.started = true
		a.index = 0
	}
	if a.index > 512 {
		f.setX(0)
		f.resetAfterAnim()
		f.finish()
		f.identity()
	} else {
		f.setX(a.xCurve(a.index))
		a.index += 8
		scale := a.scaleCurve(a.index)
		f.setAffine(256+scale, 256+scale, 0)
	}
	f.tryFlipX()
}

func newHorizontalSlideShrink() *slideScale {
	return &slideScale{
		xCurve:     func(i int) int { return utils.Sin(i%256, 8) },
		scaleCurve: func(i int) int { return utils.Sin(i%128, 96) },
	}
}

func newLungeGrow() *slideScale {
	return &slideScale{
		xCurve:     func(i int) int { return -utils.Sin((i%256)/2, 16) },
		scaleCurve: func(i int) int { return -utils.Sin((i%256)/2, 64) },
	}
}

func newCircleIntoBackground() *slideScale {
	return &slideScale{
		xCurve:     func(i int) int { return -utils.Sin(i%256, 8) },
		scaleCurve: func(i int) int { return utils.Sin((i%256)/2, 96) },
	}
}

// stretchShape 拉伸脉动的形状
type stretchShape int

const (
	stretchBothEnds stretchShape = iota
	stretchFar
	stretchStutter
)

// stretchPulse 背视用的拉伸脉动，中段带细颤
type stretchPulse struct {
	shape     stretchShape
	runs      int
	duration  int
	amplitude int

	started bool
	timer   int
	wobble  int
}

func (a *stretchPulse) step(f *frame) {
	if !a.started {
		f.startAffine()
		a.started = true
	}
	if a.timer > a.duration {
		if a.shape != stretchFar {
			f.setY(0)
		}
		a.timer = 0
		f.identity()
		if a.runs <= 1 {
			f.resetAfterAnim()
			f.finish()
		} else {
			a.runs--
			a.wobble = 0
		}
		return
	}

	index1 := 0
	index2 := a.timer * 128 / a.duration
	lo := a.duration / 4
	hi := lo * 3
	if a.timer >= lo && a.timer < hi {
		a.wobble += 51
		index1 = a.wobble & 0xFF
	}

	amp := a.amplitude
	mirrored := f.sprite.Mirrored
	var xScale, yScale int
	switch a.shape {
	case stretchBothEnds:
		if mirrored {
			xScale = -256 - utils.Sin(index2, 16)
		} else {
			xScale = 256 + utils.Sin(index2, 16)
		}
		yScale = 256 - utils.Sin(index2, amp) - utils.Sin(index1, amp/5)
	case stretchFar:
		if mirrored {
			xScale = -256 + utils.Sin(index2, amp) + utils.Sin(index1, amp/5*2)
		} else {
			xScale = 256 - utils.Sin(index2, amp) - utils.Sin(index1, amp/5*2)
		}
		yScale = 256
	case stretchStutter:
		if mirrored {
			xScale = utils.Sin(index2, amp) + (utils.Sin(index1, amp/5*2) - 256)
		} else {
			xScale = 256 - utils.Sin(index1, amp/5*2) - utils.Sin(index2, amp)
		}
		yScale = 256 - utils.Sin(index1, amp/5) - utils.Sin(index2, amp)
	}
	f.setAffineRaw(xScale, yScale, 0)
	a.timer++
}

// deepVerticalSquishBounce 深蹲后高高弹起，参数保存在上下文槽
type deepVerticalSquishBounce struct {
	runs int

	slot    *ContextSlot
	started bool
	phase   int
	leg     int
}

func (a *deepVerticalSquishBounce) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Rotation = 4
		a.slot.Runs = a.runs
	}
	if a.slot.Delay != 0 {
		a.slot.Delay--
		return
	}
	if !a.started {
		f.startAffine()
		a.started = true
		a.phase, a.leg = 0, 0
	}

	switch a.leg {
	case 0:
		stretch := utils.Sin(a.phase, 256)
		f.setY(utils.Sin(a.phase, 16))
		squash := utils.Sin(a.phase, 32)
		f.setAffine(256-squash, 256+stretch, 0)
		if a.phase == 128 {
			a.phase = 0
			a.leg = 1
		}
	case 1:
		stretch := utils.Sin(a.phase, 32)
		f.setY(-utils.Sin(a.phase, 8))
		squash := utils.Sin(a.phase, 128)
		f.setAffine(256+squash, 256-stretch, 0)
		if a.phase == 128 {
			if a.slot.Runs > 1 {
				a.slot.Runs--
				a.slot.Delay = 10
				a.phase, a.leg = 0, 0
			} else {
				f.identity()
				f.resetAfterAnim()
				f.finish()
			}
		}
	}
	a.phase += a.slot.Rotation
}

// shrinkGrowVibrate 缩放抖动，偶数帧幅度大、奇数帧幅度小
type shrinkGrowVibrate struct {
	period   int
	duration int
	timer    int
}

func (a *shrinkGrowVibrate) step(f *frame) {
	if a.timer == 0 {
		f.startAffine()
		f.setY(f.y() + 2)
	}
	if a.timer > a.duration {
		f.setY(0)
		f.identity()
		f.resetAfterAnim()
		f.finish()
	} else {
		index := int(uint16((a.timer%a.period)*256)) / a.period % 256
		amplitude := 8
		if a.timer%2 == 0 {
			amplitude = 32
		}
		offset := utils.Sin(index, amplitude)
		scale := offset + 256
		f.setY(offset / 8)
		f.setAffine(scale, scale, 0)
	}
	a.timer++
}

// horizontalDip 以右下角为支点向一侧压低
type horizontalDip struct {
	duration  int
	amplitude int
	radius    int
	runs      int

	started bool
	done    int
	timer   int
}

func (a *horizontalDip) step(f *frame) {
	f.tryFlipX()
	defer f.tryFlipX()
	if !a.started {
		f.startAffine()
		a.started = true
	}
	if a.timer > a.duration {
		f.identity()
		f.setX(0)
		f.setY(0)
		a.done++
		if a.runs <= a.done {
			f.resetAfterAnim()
			f.finish()
			return
		}
		a.timer = 0
	} else {
		index := int(uint16(utils.Sin((a.timer*128)/a.duration, a.amplitude)))
		setPosForRotation(f, index, a.radius, 0)
		f.setAffine(256, 256, -(index << 8))
	}
	a.timer++
}

// setPosForRotation 让精灵绕 (ampX, ampY) 处的支点旋转 index
func setPosForRotation(f *frame, index, ampX, ampY int) {
	ampX, ampY = -ampX, -ampY
	xAdder := int16(utils.Cos(index, ampX) - utils.Sin(index, ampY))
	yAdder := int16(utils.Cos(index, ampY) + utils.Sin(index, ampX))
	ampX, ampY = -ampX, -ampY
	f.setX(int(xAdder) + ampX)
	f.setY(int(yAdder) + ampY)
}

// bounceLegs 弹跳摇摆的两套节奏：起点、终点、帧数
var bounceLegs = [2][8][3]int{
	{
		{0, 8, 8},
		{8, -8, 12},
		{-8, 8, 12},
		{8, -8, 12},
		{-8, 8, 12},
		{8, -8, 12},
		{-8, 0, 12},
		{0, 0, 0},
	},
	{
		{0, 8, 16},
		{8, -8, 24},
		{-8, 8, 24},
		{8, -8, 24},
		{-8, 8, 24},
		{8, -8, 24},
		{-8, 0, 24},
		{0, 0, 0},
	},
}

// bounceRotateToSides 左右弹跳，旋转量跟随水平位置
type bounceRotateToSides struct {
	rotation int
	tempo    int

	slot    *ContextSlot
	started bool
	leg     int
	count   int
}

func (a *bounceRotateToSides) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Rotation = a.rotation
		a.slot.Data = a.tempo
	}
	f.tryFlipX()
	leg := bounceLegs[a.slot.Data][a.leg]
	from := leg[0]
	span := leg[1] - from
	frames := leg[2]
	if !a.started {
		f.startAffine()
		a.started = true
	}

	if frames == 0 {
		f.identity()
		f.setX(0)
		f.setY(0)
		f.resetAfterAnim()
		f.finish()
	} else {
		f.setY(-utils.Sin(a.count*128/frames, 10))
		f.setX(span*a.count/frames + from)
		f.setAffine(256, 256, -(a.slot.Rotation*f.x())/8)
		if a.count == frames {
			a.leg++
			a.count = 0
		} else {
			a.count++
		}
	}
	f.tryFlipX()
}
