package monanim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/pkg/utils"
)

// AffineMode 精灵的仿射渲染模式
type AffineMode int

const (
	// AffineOff 不使用仿射矩阵
	AffineOff AffineMode = iota
	// AffineNormal 使用仿射矩阵，画布尺寸不变
	AffineNormal
	// AffineDouble 使用仿射矩阵，画布尺寸加倍以容纳旋转和放大
	AffineDouble
)

func (m AffineMode) String() string {
	switch m {
	case AffineOff:
		return "off"
	case AffineNormal:
		return "normal"
	case AffineDouble:
		return "double"
	default:
		return "unknown"
	}
}

// AffineParams 渲染器使用的仿射参数
// 缩放以 256 为原始大小，值越大图像越小；旋转一圈为 65536
type AffineParams struct {
	XScale   int16
	YScale   int16
	Rotation uint16
}

// IdentityAffine 原始大小、无旋转
var IdentityAffine = AffineParams{XScale: utils.AffineIdentityScale, YScale: utils.AffineIdentityScale}

// callbackKind 精灵当前的每帧回调
type callbackKind int

const (
	// callbackDummy 终止回调，动画已完全结束
	callbackDummy callbackKind = iota
	// callbackAnim 正在运行某个动画变体
	callbackAnim
	// callbackWaitAnimEnd 变换已结束，等待帧动画播放完
	callbackWaitAnimEnd
)

// activeAnim 一次动画运行的私有状态
type activeAnim struct {
	id      AnimID
	state   animState
	summary bool
	slots   []slotClaim
	// affineStarted 动画是否切换过仿射模式
	affineStarted bool
	// paletteOffset 动画首次调色时记录，-1 表示没有碰过调色板
	paletteOffset int
}

// Sprite 可被变换动画驱动的精灵
//
// 宿主负责渲染和帧动画，本结构只承载动画需要读写的字段。
// 新建精灵处于终止状态，IsAnimationComplete 直接返回 true。
type Sprite struct {
	// X2, Y2 叠加在基准位置上的像素偏移
	X2 int16
	Y2 int16

	Invisible  bool
	PaletteNum int

	// Width, Height 图像尺寸（像素），用于计算仿射中心偏移
	Width  int
	Height int
	// CenterToCornerVecX/Y 由 startAffine 按模式重新计算
	CenterToCornerVecX int
	CenterToCornerVecY int

	AffineMode AffineMode
	HFlip      bool
	// MatrixAllocated 是否持有仿射矩阵
	MatrixAllocated bool
	Affine          AffineParams
	// Matrix 由 Affine 合成，供 ebiten 渲染使用
	Matrix ebiten.GeoM
	// AffineAnimPaused 动画期间暂停精灵自身的仿射动画
	AffineAnimPaused bool

	// FrameAnimEnded 宿主的帧动画是否已播完；没有帧动画的宿主保持 true
	FrameAnimEnded bool

	// Mirrored 为 true 时水平偏移和旋转取反（我方精灵为 false）
	Mirrored bool

	// BattlerID, SpeciesID 宿主记录的身份，动画期间不会被改写
	BattlerID int
	SpeciesID int

	// mirrorForced 有托管任务正在强制非镜像播放，mirroredBeforeTask 为被强制前的值
	mirrorForced       bool
	mirroredBeforeTask bool

	callback callbackKind
	run      *activeAnim
}

// NewSprite 创建处于终止状态的精灵
//
// 参数：
//   - width, height: 图像尺寸
//
// 返回：
//   - *Sprite: 偏移为 0、仿射为单位参数的精灵
func NewSprite(width, height int) *Sprite {
	s := &Sprite{
		Width:          width,
		Height:         height,
		Affine:         IdentityAffine,
		FrameAnimEnded: true,
	}
	s.CenterToCornerVecX, s.CenterToCornerVecY = utils.CenterToCornerVec(width, height, false)
	s.Matrix = utils.ComposeAffine(s.Affine.XScale, s.Affine.YScale, s.Affine.Rotation)
	return s
}

// CurrentAnim 返回正在运行的动画编号，没有时返回 AnimNone
func (s *Sprite) CurrentAnim() AnimID {
	if s.run == nil || s.callback != callbackAnim {
		return AnimNone
	}
	return s.run.id
}

// Running 变换动画是否还在每帧推进
func (s *Sprite) Running() bool {
	return s.callback == callbackAnim
}

// Finished 变换部分已经结束（等待帧动画或已终止）
func (s *Sprite) Finished() bool {
	return s.callback != callbackAnim
}

// Summary 当前动画是否以图鉴模式启动
func (s *Sprite) Summary() bool {
	return s.run != nil && s.run.summary
}

// AffineEnabled 渲染器是否应使用 Matrix
func (s *Sprite) AffineEnabled() bool {
	return s.AffineMode != AffineOff && s.MatrixAllocated
}

// Offset 返回当前像素偏移
func (s *Sprite) Offset() (int, int) {
	return int(s.X2), int(s.Y2)
}

func (s *Sprite) applyAffine(p AffineParams) {
	s.Affine = p
	s.Matrix = utils.ComposeAffine(p.XScale, p.YScale, p.Rotation)
}
