package monanim

import (
	"fmt"
	"strings"
)

// BackAnimSet 背视动画组（动作家族），每组有三个节奏变体
type BackAnimSet int

const (
	BackHorizontalVibrate BackAnimSet = iota
	BackHorizontalSlide
	BackHorizontalSpring
	BackHorizontalSpringRepeated
	BackShrinkGrow
	BackGrow
	BackCircleCounterclockwise
	BackHorizontalShake
	BackVerticalShake
	BackVerticalShakeHorizontalSlide
	BackVerticalStretch
	BackHorizontalStretch
	BackGrowStutter
	BackVerticalShakeLow
	BackTriangleDown
	BackConcaveArcLarge
	BackConvexDoubleArc
	BackConcaveArcSmall
	BackDipRightSide
	BackShrinkGrowVibrate
	BackJoltRight
	BackShakeFlashYellow
	BackShakeGlowRed
	BackShakeGlowGreen
	BackShakeGlowBlue
	// BackAnimSetCount 背视动画组数量
	BackAnimSetCount
)

// BackAnimVariants 每组的变体数，也是性格修正值的取值个数
const BackAnimVariants = 3

var backAnimSetNames = [BackAnimSetCount]string{
	"h_vibrate",
	"h_slide",
	"h_spring",
	"h_spring_repeated",
	"shrink_grow",
	"grow",
	"circle_counterclockwise",
	"h_shake",
	"v_shake",
	"v_shake_h_slide",
	"v_stretch",
	"h_stretch",
	"grow_stutter",
	"v_shake_low",
	"triangle_down",
	"concave_arc_large",
	"convex_double_arc",
	"concave_arc_small",
	"dip_right_side",
	"shrink_grow_vibrate",
	"jolt_right",
	"shake_flash_yellow",
	"shake_glow_red",
	"shake_glow_green",
	"shake_glow_blue",
}

// backAnimTable 每组按修正值 0、1、2 排列的动画
// 多数组是快、正常、慢；部分组是两次、正常、慢或分段
var backAnimTable = [BackAnimSetCount][BackAnimVariants]AnimID{
	BackHorizontalVibrate:            {AnimHorizontalVibrateFastest, AnimHorizontalVibrateFast, AnimHorizontalVibrate},
	BackHorizontalSlide:              {AnimHorizontalSlideFast, AnimHorizontalSlide, AnimHorizontalSlideSlow},
	BackHorizontalSpring:             {AnimHorizontalSpringFast, AnimHorizontalSpring, AnimHorizontalSpringSlow},
	BackHorizontalSpringRepeated:     {AnimHorizontalRepeatedSpringFast, AnimHorizontalRepeatedSpring, AnimHorizontalRepeatedSpringSlow},
	BackShrinkGrow:                   {AnimShrinkGrowFast, AnimShrinkGrow, AnimShrinkGrowSlow},
	BackGrow:                         {AnimGrowTwice, AnimGrow, AnimGrowInStages},
	BackCircleCounterclockwise:       {AnimCircleCounterclockwiseLong, AnimCircleCounterclockwise, AnimCircleCounterclockwiseSlow},
	BackHorizontalShake:              {AnimHorizontalShakeFast, AnimHorizontalShake, AnimHorizontalShakeSlow},
	BackVerticalShake:                {AnimVerticalShakeBackFast, AnimVerticalShakeBack, AnimVerticalShakeBackSlow},
	BackVerticalShakeHorizontalSlide: {AnimVerticalShakeHorizontalSlideFast, AnimVerticalShakeHorizontalSlide, AnimVerticalShakeHorizontalSlideSlow},
	BackVerticalStretch:              {AnimVerticalStretchBothEndsTwice, AnimVerticalStretchBothEnds, AnimVerticalStretchBothEndsSlow},
	BackHorizontalStretch:            {AnimHorizontalStretchFarTwice, AnimHorizontalStretchFar, AnimHorizontalStretchFarSlow},
	BackGrowStutter:                  {AnimGrowStutterTwice, AnimGrowStutter, AnimGrowStutterSlow},
	BackVerticalShakeLow:             {AnimVerticalShakeLowTwiceFast, AnimVerticalShakeLowTwice, AnimVerticalShakeLowTwiceSlow},
	BackTriangleDown:                 {AnimTriangleDownTwice, AnimTriangleDown, AnimTriangleDownSlow},
	BackConcaveArcLarge:              {AnimConcaveArcLargeTwice, AnimConcaveArcLarge, AnimConcaveArcLargeSlow},
	BackConvexDoubleArc:              {AnimConvexDoubleArcTwice, AnimConvexDoubleArc, AnimConvexDoubleArcSlow},
	BackConcaveArcSmall:              {AnimConcaveArcSmallTwice, AnimConcaveArcSmall, AnimConcaveArcSmallSlow},
	BackDipRightSide:                 {AnimHorizontalDipTwice, AnimHorizontalDip, AnimHorizontalDipFast},
	BackShrinkGrowVibrate:            {AnimShrinkGrowVibrateFast, AnimShrinkGrowVibrate, AnimShrinkGrowVibrateSlow},
	BackJoltRight:                    {AnimJoltRightFast, AnimJoltRight, AnimJoltRightSlow},
	BackShakeFlashYellow:             {AnimShakeFlashYellowFast, AnimShakeFlashYellow, AnimShakeFlashYellowSlow},
	BackShakeGlowRed:                 {AnimShakeGlowRedFast, AnimShakeGlowRed, AnimShakeGlowRedSlow},
	BackShakeGlowGreen:               {AnimShakeGlowGreenFast, AnimShakeGlowGreen, AnimShakeGlowGreenSlow},
	BackShakeGlowBlue:                {AnimShakeGlowBlueFast, AnimShakeGlowBlue, AnimShakeGlowBlueSlow},
}

// Valid 判断动画组编号是否已定义
func (s BackAnimSet) Valid() bool {
	return s >= 0 && s < BackAnimSetCount
}

func (s BackAnimSet) String() string {
	if !s.Valid() {
		return fmt.Sprintf("back_set(%d)", int(s))
	}
	return backAnimSetNames[s]
}

// ParseBackAnimSet 按配置名查找背视动画组
func ParseBackAnimSet(name string) (BackAnimSet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range backAnimSetNames {
		if n == key {
			return BackAnimSet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBackAnimSet, name)
}

// Resolve 按动画组和性格修正值选出具体动画
//
// 纯查表，相同输入总是得到相同结果。
//
// 参数：
//   - set: 背视动画组
//   - modifier: 性格修正值 0、1、2
//
// 返回：
//   - AnimID: 具体动画；组或修正值越界时返回 AnimNone
func Resolve(set BackAnimSet, modifier int) AnimID {
	if !set.Valid() || modifier < 0 || modifier >= BackAnimVariants {
		return AnimNone
	}
	return backAnimTable[set][modifier]
}

// Variants 返回动画组的三个变体
func (s BackAnimSet) Variants() ([BackAnimVariants]AnimID, error) {
	if !s.Valid() {
		return [BackAnimVariants]AnimID{}, fmt.Errorf("%w: %d", ErrInvalidBackAnimSet, int(s))
	}
	return backAnimTable[s], nil
}
