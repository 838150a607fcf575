package monanim

import (
	"fmt"
	"strings"
)

// AnimID 精灵变换动画编号
// 编号顺序即动画目录的下标，存档和物种表都依赖这个顺序，不能调整
type AnimID int

// 动画目录
const (
	AnimVerticalSquishAndBounce AnimID = iota
	AnimCircularStretchTwice
	AnimHorizontalVibrate
	AnimHorizontalSlide
	AnimVerticalSlide
	AnimBounceRotateToSides
	AnimVerticalJumpsHorizontalJumps
	AnimRotateToSides
	AnimRotateToSidesTwice
	AnimGrowVibrate
	AnimZigzagFast
	AnimSwingConcave
	AnimSwingConcaveFast
	AnimSwingConvex
	AnimSwingConvexFast
	AnimHorizontalShake
	AnimVerticalShake
	AnimCircularVibrate
	AnimTwist
	AnimShrinkGrow
	AnimCircleCounterclockwise
	AnimGlowBlack
	AnimHorizontalStretch
	AnimVerticalStretch
	AnimRisingWobble
	AnimVerticalShakeTwice
	AnimTipMoveForward
	AnimHorizontalPivot
	AnimVerticalSlideWobble
	AnimHorizontalSlideWobble
	AnimVerticalJumpsBig
	AnimSpinLong
	AnimGlowOrange
	AnimGlowRed
	AnimGlowBlue
	AnimGlowYellow
	AnimGlowPurple
	AnimBackAndLunge
	AnimBackFlip
	AnimFlicker
	AnimBackFlipBig
	AnimFrontFlip
	AnimTumblingFrontFlip
	AnimFigure8
	AnimFlashYellow
	AnimSwingConcaveFastShort
	AnimSwingConvexFastShort
	AnimRotateUpSlamDown
	AnimDeepVerticalSquishAndBounce
	AnimHorizontalJumps
	AnimHorizontalJumpsVerticalStretch
	AnimRotateToSidesFast
	AnimRotateUpToSides
	AnimFlickerIncreasing
	AnimTipHopForward
	AnimPivotShake
	AnimTipAndShake
	AnimVibrateToCorners
	AnimGrowInStages
	AnimVerticalSpring
	AnimVerticalRepeatedSpring
	AnimSpringRising
	AnimHorizontalSpring
	AnimHorizontalRepeatedSpringSlow
	AnimHorizontalSlideShrink
	AnimLungeGrow
	AnimCircleIntoBackground
	AnimRapidHorizontalHops
	AnimFourPetal
	AnimVerticalSquishAndBounceSlow
	AnimHorizontalSlideSlow
	AnimVerticalSlideSlow
	AnimBounceRotateToSidesSmall
	AnimBounceRotateToSidesSlow
	AnimBounceRotateToSidesSmallSlow
	AnimZigzagSlow
	AnimHorizontalShakeSlow
	AnimVerticalShakeSlow
	AnimTwistTwice
	AnimCircleCounterclockwiseSlow
	AnimVerticalShakeTwiceSlow
	AnimVerticalSlideWobbleSmall
	AnimVerticalJumpsSmall
	AnimSpin
	AnimTumblingFrontFlipTwice
	AnimDeepVerticalSquishAndBounceTwice
	AnimHorizontalJumpsVerticalStretchTwice
	AnimVerticalShakeBack
	AnimVerticalShakeBackSlow
	AnimVerticalShakeHorizontalSlideSlow
	AnimVerticalStretchBothEndsSlow
	AnimHorizontalStretchFarSlow
	AnimVerticalShakeLowTwice
	AnimHorizontalShakeFast
	AnimHorizontalSlideFast
	AnimHorizontalVibrateFast
	AnimHorizontalVibrateFastest
	AnimVerticalShakeBackFast
	AnimVerticalShakeLowTwiceSlow
	AnimVerticalShakeLowTwiceFast
	AnimCircleCounterclockwiseLong
	AnimGrowStutterSlow
	AnimVerticalShakeHorizontalSlide
	AnimVerticalShakeHorizontalSlideFast
	AnimTriangleDownSlow
	AnimTriangleDown
	AnimTriangleDownTwice
	AnimGrow
	AnimGrowTwice
	AnimHorizontalSpringFast
	AnimHorizontalSpringSlow
	AnimHorizontalRepeatedSpringFast
	AnimHorizontalRepeatedSpring
	AnimShrinkGrowFast
	AnimShrinkGrowSlow
	AnimVerticalStretchBothEnds
	AnimVerticalStretchBothEndsTwice
	AnimHorizontalStretchFarTwice
	AnimHorizontalStretchFar
	AnimGrowStutterTwice
	AnimGrowStutter
	AnimConcaveArcLargeSlow
	AnimConcaveArcLarge
	AnimConcaveArcLargeTwice
	AnimConvexDoubleArcSlow
	AnimConvexDoubleArc
	AnimConvexDoubleArcTwice
	AnimConcaveArcSmallSlow
	AnimConcaveArcSmall
	AnimConcaveArcSmallTwice
	AnimHorizontalDip
	AnimHorizontalDipFast
	AnimHorizontalDipTwice
	AnimShrinkGrowVibrateFast
	AnimShrinkGrowVibrate
	AnimShrinkGrowVibrateSlow
	AnimJoltRightFast
	AnimJoltRight
	AnimJoltRightSlow
	AnimShakeFlashYellowFast
	AnimShakeFlashYellow
	AnimShakeFlashYellowSlow
	AnimShakeGlowRedFast
	AnimShakeGlowRed
	AnimShakeGlowRedSlow
	AnimShakeGlowGreenFast
	AnimShakeGlowGreen
	AnimShakeGlowGreenSlow
	AnimShakeGlowBlueFast
	AnimShakeGlowBlue
	AnimShakeGlowBlueSlow
	AnimShakeGlowBlackSlow
	AnimShakeGlowWhiteSlow
	AnimShakeGlowPurpleSlow
	// AnimCount 目录中的动画总数
	AnimCount
)

// AnimNone 静态无动画，Resolve 遇到未定义的背视动画组时返回它
const AnimNone AnimID = -1

// Valid 判断编号是否落在动画目录范围内
func (id AnimID) Valid() bool {
	return id >= 0 && id < AnimCount
}

// String 返回动画的配置名（小写下划线形式）
func (id AnimID) String() string {
	if id == AnimNone {
		return "none"
	}
	if !id.Valid() {
		return fmt.Sprintf("anim(%d)", int(id))
	}
	return catalog[id].name
}

// ParseAnimID 按配置名查找动画编号
//
// 名称大小写不敏感，"none" 解析为 AnimNone
//
// 参数：
//   - name: 配置名，如 "h_vibrate"
//
// 返回：
//   - AnimID: 动画编号
//   - error: 名称未知时返回 ErrUnknownAnimName
func ParseAnimID(name string) (AnimID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "none" {
		return AnimNone, nil
	}
	if id, ok := animIDsByName[key]; ok {
		return id, nil
	}
	return AnimNone, fmt.Errorf("%w: %q", ErrUnknownAnimName, name)
}

var animIDsByName = func() map[string]AnimID {
	m := make(map[string]AnimID, AnimCount)
	for i := range catalog {
		m[catalog[i].name] = AnimID(i)
	}
	return m
}()
