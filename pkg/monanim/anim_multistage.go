package monanim

import "github.com/decker502/monanim/pkg/utils"

// 分阶段推进的动画，phase 为 0 的一帧只做仿射初始化

// backAndLunge 后撤、前冲、原地抖动、回位
type backAndLunge struct {
	phase int
	speed int
	steps int
	tilt  int
	shake int
	count int
	angle int
}

func (a *backAndLunge) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		f.setX(f.x() + 1)
		if f.x() > 7 {
			f.setX(8)
			a.speed = 2
			a.phase = 2
		}
	case 2:
		f.setX(f.x() - a.speed)
		a.speed++
		if f.x() <= 0 {
			sub := int16(f.x())
			v := uint8(a.speed)
			a.steps = 0
			for {
				sub -= int16(v)
				a.steps++
				v++
				if sub <= -8 {
					break
				}
			}
			a.tilt = 1
			a.phase = 3
		}
	case 3:
		f.setX(f.x() - a.speed)
		a.speed++
		rotation := int(uint8((a.tilt * 6) / a.steps))
		a.tilt++
		if a.tilt > a.steps {
			a.tilt = a.steps
		}
		f.setAffine(256, 256, rotation*256)
		if f.x() < -8 {
			f.setX(-8)
			a.shake = 2
			a.count = 0
			a.angle = rotation
			a.phase = 4
		}
	case 4:
		if a.count > 11 {
			a.angle -= 2
			if a.angle < 0 {
				a.angle = 0
			}
			f.setAffine(256, 256, a.angle<<8)
			if a.angle == 0 {
				a.phase = 5
			}
		} else {
			f.setX(f.x() + a.shake)
			a.shake = -a.shake
			a.count++
		}
	case 5:
		f.setX(f.x() + 2)
		if f.x() > 0 {
			f.setX(0)
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.tryFlipX()
}

// backFlip 后空翻
type backFlip struct {
	phase int
	wait  int
	arc   int
	angle int
}

func (a *backFlip) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.wait = 0
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		f.setX(f.x() + 1)
		f.setY(f.y() - 1)
		if f.x()%2 == 0 && a.wait <= 0 {
			a.wait = 10
		}
		if f.x() > 7 {
			f.setX(8)
			f.setY(-8)
			a.arc = 0
			a.phase = 2
		}
	case 2:
		f.setX(utils.Cos(a.arc, 16) - 8)
		f.setY(utils.Sin(a.arc, 16) - 8)
		if a.arc > 63 {
			a.angle = 160
			a.wait = 10
			a.phase = 3
		}
		a.arc += 8
		if a.arc > 64 {
			a.arc = 64
		}
	case 3:
		if a.wait > 0 {
			a.wait--
			break
		}
		f.setX(utils.Cos(a.angle, 5) - 4)
		f.setY(-utils.Sin(a.angle, 5) + 4)
		a.angle -= 4
		f.setAffine(256, 256, (a.angle-32)*512)
		if a.angle <= 32 {
			f.setX(0)
			f.setY(0)
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.tryFlipX()
}

// backFlipBig 大幅后空翻
type backFlipBig struct {
	phase int
	angle int
}

func (a *backFlipBig) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		f.setX(f.x() - 1)
		f.setY(f.y() + 1)
		if f.x() <= -16 {
			f.setX(-16)
			f.setY(16)
			a.angle = 160
			a.phase = 2
		}
	case 2:
		a.angle -= 4
		f.setX(utils.Cos(a.angle, 22))
		f.setY(-utils.Sin(a.angle, 22))
		f.setAffine(256, 256, (a.angle-32)*512)
		if a.angle <= 32 {
			a.phase = 3
		}
	case 3:
		f.setX(f.x() - 1)
		f.setY(f.y() + 1)
		if f.x() <= 0 {
			f.setX(0)
			f.setY(0)
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.tryFlipX()
}

// frontFlip 前空翻
type frontFlip struct {
	phase int
	angle int
}

func (a *frontFlip) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		f.setX(f.x() + 1)
		f.setY(f.y() - 1)
		if f.x() > 15 {
			a.angle = 0
			a.phase = 2
		}
	case 2:
		a.angle += 16
		if f.x() <= -16 {
			f.setX(-16)
			f.setY(16)
			a.angle = 0
			a.phase = 3
		} else {
			f.setX(f.x() - 2)
			f.setY(f.y() + 2)
		}
		f.setAffine(256, 256, a.angle<<8)
	case 3:
		f.setX(f.x() + 1)
		f.setY(f.y() - 1)
		if f.x() >= 0 {
			f.setX(0)
			f.setY(0)
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.tryFlipX()
}

// tumblingFrontFlip 在方框内反弹翻滚，参数保存在上下文槽
type tumblingFrontFlip struct {
	speed int
	runs  int

	slot    *ContextSlot
	started bool
	velocity int
	dirX    int
	dirY    int
	bounces int
	spin    int
}

func (a *tumblingFrontFlip) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Speed = a.speed
		a.slot.Runs = a.runs
	}
	if a.slot.Delay != 0 {
		a.slot.Delay--
		return
	}

	f.tryFlipX()
	if !a.started {
		a.started = true
		f.startAffine()
		a.velocity = a.slot.Speed
		a.dirX, a.dirY = -1, -1
		a.bounces, a.spin = 0, 0
	}

	f.setX(f.x() + a.velocity*2*a.dirX)
	f.setY(f.y() + a.velocity*a.dirY)
	a.spin += 8
	if f.x() <= -16 || f.x() >= 16 {
		f.setX(a.dirX * 16)
		a.dirX = -a.dirX
		a.bounces++
	} else if f.y() <= -16 || f.y() >= 16 {
		f.setY(a.dirY * 16)
		a.dirY = -a.dirY
		a.bounces++
	}

	if a.bounces > 5 && f.x() <= 0 {
		f.setX(0)
		f.setY(0)
		if a.slot.Runs > 1 {
			a.slot.Runs--
			a.bounces, a.spin = 0, 0
			a.slot.Delay = 10
		} else {
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.setAffine(256, 256, a.spin<<8)
	f.tryFlipX()
}

// figure8 走 8 字，中途水平翻转一次
type figure8 struct {
	started bool
	index   int
	flips   int
}

func (a *figure8) step(f *frame) {
	if !a.started {
		f.startAffine()
		a.started = true
		a.index, a.flips = 0, 0
		return
	}

	f.tryFlipX()
	a.index += 4
	f.setX(-utils.Sin(a.index, 16))
	f.setY(-utils.Sin((a.index*2)&0xFF, 8))
	if a.index > 192 && a.flips == 1 {
		f.identity()
		a.flips++
	} else if a.index > 64 && a.flips == 0 {
		f.setAffine(-256, 256, 0)
		a.flips++
	}
	if a.index > 255 {
		f.setX(0)
		f.setY(0)
		f.identity()
		f.resetAfterAnim()
		f.finish()
	}
	f.tryFlipX()
}

// rotateUpSlamDown 抬起后砸下，接一段垂直晃动
type rotateUpSlamDown struct {
	phase  int
	radius int
	angle  int
	wait   int
}

func (a *rotateUpSlamDown) arc(f *frame) {
	f.setX(a.radius + utils.Cos(a.angle, a.radius))
	f.setY(-utils.Sin(a.angle, a.radius))
	f.setAffine(256, 256, (a.angle-128)<<8)
}

func (a *rotateUpSlamDown) step(f *frame) {
	switch a.phase {
	case 0:
		f.startAffine()
		a.radius = -(14 * f.sprite.CenterToCornerVecX / 10)
		a.angle = 128
		a.phase = 1
	case 1:
		f.tryFlipX()
		a.angle--
		a.arc(f)
		if a.angle <= 120 {
			a.angle = 120
			a.wait = 0
			a.phase = 2
		}
		f.tryFlipX()
	case 2:
		if a.wait == 20 {
			a.wait = 0
			a.phase = 3
		}
		a.wait++
	case 3:
		f.tryFlipX()
		a.angle += 2
		a.arc(f)
		if a.angle >= 128 {
			f.setX(0)
			f.setY(0)
			f.identity()
			f.resetAfterAnim()
			f.become(&verticalShake{speed: 60})
		}
		f.tryFlipX()
	}
}

// horizontalJumpsVerticalStretch 侧跳、原地纵向拉伸、跳回，参数保存在上下文槽
type horizontalJumpsVerticalStretch struct {
	direction int
	runs      int

	slot   *ContextSlot
	phase  int
	timer  int
	bounce int
	squash int
}

func (a *horizontalJumpsVerticalStretch) step(f *frame) {
	if a.slot == nil {
		a.slot = f.claim()
		a.slot.Data = a.direction
		a.slot.Runs = a.runs
		f.startAffine()
		a.bounce = 0
	}

	switch a.phase {
	case 0:
		if a.slot.Delay != 0 {
			a.slot.Delay--
			return
		}
		f.tryFlipX()
		counter := a.timer
		if a.timer > 128 {
			a.timer = 0
			a.phase = 1
		} else {
			reach := 8 * a.slot.Data
			f.setX(reach * (counter % 128) / 128)
			f.setY(-utils.Sin(counter%128, 8))
			a.timer += 12
		}
		f.tryFlipX()
	case 1:
		f.tryFlipX()
		if a.timer > 48 {
			f.identity()
			f.setY(0)
			a.timer = 0
			a.phase = 2
		} else {
			yScale := utils.Sin(a.squash, 64) + 256
			if a.timer >= 16 && a.timer <= 31 {
				a.bounce += 8
				f.setX(f.x() - a.slot.Data)
			}
			yDelta := 0
			if yScale > 256 {
				yDelta = (256 - yScale) / 8
			}
			f.setY(-utils.Sin(a.bounce, 20) - yDelta)
			f.setAffine(256-utils.Sin(a.squash, 32), yScale, 0)
			a.timer++
			a.squash = (a.squash + 8) & 0xFF
		}
		f.tryFlipX()
	case 2:
		f.tryFlipX()
		counter := a.timer
		if counter > 128 {
			if a.slot.Runs > 1 {
				a.slot.Runs--
				a.slot.Delay = 10
				a.bounce, a.timer, a.squash = 0, 0, 0
				a.phase = 0
			} else {
				f.resetAfterAnim()
				f.finish()
			}
			f.setX(0)
			f.setY(0)
		} else {
			dir := a.slot.Data
			f.setX(dir*((counter%128)*8)/128 + 8*-dir)
			f.setY(-utils.Sin(counter%128, 8))
		}
		a.timer += 12
		f.tryFlipX()
	}
}

// tipHopForward 前倾后向前小跳，再立起
type tipHopForward struct {
	phase int
	tilt  int
	timer int
}

func (a *tipHopForward) step(f *frame) {
	switch a.phase {
	case 0:
		f.startAffine()
		a.tilt = 0
		a.phase = 1
	case 1:
		if a.tilt > 31 {
			a.tilt = 32
			a.timer = 0
			a.phase = 2
		} else {
			a.tilt += 4
		}
		f.setAffine(256, 256, a.tilt<<8)
	case 2:
		f.tryFlipX()
		if a.timer > 512 {
			a.phase = 3
		} else {
			f.setX(-(a.timer * 16) / 512)
			f.setY(-utils.Sin(a.timer%128, 4))
			a.timer += 12
		}
		f.tryFlipX()
	case 3:
		f.tryFlipX()
		a.tilt -= 2
		if a.tilt < 0 {
			a.tilt = 0
			f.setX(0)
			f.resetAfterAnim()
			f.finish()
		} else {
			f.setX(-utils.Sin(a.tilt*2, 16))
		}
		f.setAffine(256, 256, a.tilt<<8)
		f.tryFlipX()
	}
}

// tipAndShake 倾斜后在倾斜位置来回抖动
type tipAndShake struct {
	phase  int
	tilt   int
	hold   int
	dir    int
	shakes int
}

func (a *tipAndShake) lean(f *frame) {
	f.setX(utils.Sin(a.tilt, 8))
	f.setY(-utils.Sin(a.tilt, 8))
}

func (a *tipAndShake) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.tilt, a.hold = 0, 0
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		if a.tilt > 24 {
			a.hold++
			if a.hold > 4 {
				a.hold = 0
				a.phase = 2
			}
		} else {
			a.tilt += 2
			a.lean(f)
		}
	case 2:
		if a.tilt > 32 {
			a.dir = 1
			a.phase = 3
		} else {
			a.tilt += 2
			a.lean(f)
		}
	case 3:
		a.tilt += a.dir * 4
		if a.shakes > 9 {
			a.tilt = 32
			a.phase = 4
		}
		a.lean(f)
		if a.tilt <= 28 || a.tilt >= 36 {
			a.dir = -a.dir
			a.shakes++
		}
	case 4:
		if a.tilt <= 0 {
			a.tilt = 0
			f.resetAfterAnim()
			f.finish()
		} else {
			a.tilt -= 2
			a.lean(f)
		}
	}
	f.setAffine(256, 256, -a.tilt<<8)
	f.tryFlipX()
}

// springRising 压缩后弹跳三次逐级升高，再落回
type springRising struct {
	phase int
	index int
	hops  int
}

func (a *springRising) step(f *frame) {
	var yScale int
	switch a.phase {
	case 0:
		f.startAffine()
		a.index = 0
		a.phase = 1
		return
	case 1:
		a.index += 8
		if a.index > 63 {
			a.index, a.hops = 0, 0
			a.phase = 2
			yScale = utils.Sin(64, 128)
		} else {
			yScale = utils.Sin(a.index, 128)
		}
	case 2:
		a.index += 4
		if a.index > 95 {
			yScale = utils.Cos(0, 128)
			a.index = 0
			a.hops++
		} else {
			f.setY(-(a.hops * 4) - utils.Sin(a.index, 8))
			sign, idx := 1, 0
			if a.index > 63 {
				sign, idx = -1, a.index-64
			}
			yScale = utils.Cos(idx*2+a.index, 128) * sign
		}
		if a.hops == 3 {
			a.index = 0
			a.phase = 3
		}
	case 3:
		a.index += 8
		yScale = utils.Cos(a.index, 128)
		f.setY(-utils.Cos(a.index, 12))
		if a.index > 63 {
			f.resetAfterAnim()
			f.finish()
			f.setY(0)
			f.identity()
			return
		}
	}
	f.setAffine(256, 256+yScale, 0)
}

// joltRight 后缩、猛冲、在前方抖动、回位
type joltRight struct {
	reach    int
	shakes   int
	shakeAmp int
	pullback int

	phase int
	accel int
	count int
}

func (a *joltRight) step(f *frame) {
	if a.phase == 0 {
		f.startAffine()
		a.phase = 1
		return
	}

	f.tryFlipX()
	switch a.phase {
	case 1:
		f.setX(f.x() - a.pullback)
		if f.x() <= -a.reach {
			f.setX(-a.reach)
			a.accel = 2
			a.phase = 2
		}
	case 2:
		f.setX(f.x() + a.accel)
		a.accel++
		if f.x() >= 0 {
			a.phase = 3
		}
	case 3:
		f.setX(f.x() + a.accel)
		a.accel++
		if f.x() > a.reach {
			f.setX(a.reach)
			a.phase = 4
		}
	case 4:
		if a.count >= a.shakes {
			a.phase = 5
		} else {
			f.setX(f.x() + a.shakeAmp)
			a.shakeAmp = -a.shakeAmp
			a.count++
		}
	case 5:
		f.setX(f.x() - 2)
		if f.x() <= 0 {
			f.setX(0)
			f.resetAfterAnim()
			f.finish()
		}
	}
	f.tryFlipX()
}
