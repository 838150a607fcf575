package monanim

import (
	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/utils"
)

// animState 一个动画变体的每帧状态机
// step 每帧调用一次，通过 frame 读写精灵；调用 finish 表示变换结束
type animState interface {
	step(f *frame)
}

// frame 单帧内动画可用的操作
type frame struct {
	engine *Engine
	sprite *Sprite
	run    *activeAnim
}

// tryFlipX 镜像精灵的水平偏移取反
// 变体在计算前后各调用一次，让同一套公式在镜像坐标系中运行
func (f *frame) tryFlipX() {
	if f.sprite.Mirrored {
		f.sprite.X2 = -f.sprite.X2
	}
}

// startAffine 切换到双倍尺寸仿射模式，并按朝向选择初始矩阵
func (f *frame) startAffine() {
	s := f.sprite
	s.AffineMode = AffineDouble
	s.MatrixAllocated = true
	s.applyAffine(neutralAffine(s))
	s.CenterToCornerVecX, s.CenterToCornerVecY = utils.CenterToCornerVec(s.Width, s.Height, true)
	s.AffineAnimPaused = true
	f.run.affineStarted = true
}

// setAffine 写入仿射参数，镜像精灵的水平缩放和旋转取反
func (f *frame) setAffine(xScale, yScale, rotation int) {
	if f.sprite.Mirrored {
		xScale = -xScale
		rotation = -rotation
	}
	f.setAffineRaw(xScale, yScale, rotation)
}

// setAffineRaw 原样写入仿射参数（调用方自行处理镜像）
func (f *frame) setAffineRaw(xScale, yScale, rotation int) {
	f.sprite.applyAffine(AffineParams{
		XScale:   int16(xScale),
		YScale:   int16(yScale),
		Rotation: uint16(rotation),
	})
}

// identity 当前朝向下的单位仿射
func (f *frame) identity() {
	f.setAffine(utils.AffineIdentityScale, utils.AffineIdentityScale, 0)
}

// resetAfterAnim 退出动画期间的仿射模式
// 战斗中保留普通仿射模式；图鉴模式释放矩阵，用 HFlip 保持朝向
func (f *frame) resetAfterAnim() {
	s := f.sprite
	s.AffineMode = AffineNormal
	s.CenterToCornerVecX, s.CenterToCornerVecY = utils.CenterToCornerVec(s.Width, s.Height, false)
	if f.run.summary {
		s.HFlip = s.Mirrored
		s.MatrixAllocated = false
		s.AffineMode = AffineOff
	}
}

// finish 变换结束，转入等待帧动画的回调
func (f *frame) finish() {
	f.sprite.callback = callbackWaitAnimEnd
}

// become 下一帧起改由 next 驱动
func (f *frame) become(next animState) {
	f.run.state = next
}

// claim 从池中申请上下文槽，动画结束时自动归还
func (f *frame) claim() *ContextSlot {
	_, slot, owner := f.engine.Pool.claim()
	f.run.slots = append(f.run.slots, slotClaim{slot: slot, owner: owner})
	return slot
}

// initPalette 记录精灵调色板在缓冲区中的位置
func (f *frame) initPalette() {
	f.run.paletteOffset = palette.ObjectPaletteOffset(f.sprite.PaletteNum)
}

// blend 把精灵调色板向 target 混合 coeff/16
func (f *frame) blend(coeff int, target palette.Color) {
	if f.run.paletteOffset < 0 {
		f.initPalette()
	}
	if f.engine.Palette == nil {
		return
	}
	f.engine.Palette.BlendPalette(f.run.paletteOffset, palette.ColorsPerPalette, coeff, target)
}

// mirrorSign 镜像精灵返回 -1，否则返回 1
func (f *frame) mirrorSign() int {
	if f.sprite.Mirrored {
		return -1
	}
	return 1
}

func (f *frame) setX(x int) {
	f.sprite.X2 = int16(x)
}

func (f *frame) setY(y int) {
	f.sprite.Y2 = int16(y)
}

func (f *frame) x() int {
	return int(f.sprite.X2)
}

func (f *frame) y() int {
	return int(f.sprite.Y2)
}

// alternate 偶数帧返回 1，奇数帧返回 -1
func alternate(t int) int {
	if t&1 == 0 {
		return 1
	}
	return -1
}
