package monanim

import (
	"fmt"

	"github.com/decker502/monanim/internal/palette"
)

// catalogEntry 动画目录中的一项
type catalogEntry struct {
	name string
	// unused 物种表中没有引用，保留编号以维持顺序
	unused   bool
	newState func() animState
}

// catalog 按编号排列的全部动画变体及其参数
var catalog = [AnimCount]catalogEntry{
	AnimVerticalSquishAndBounce:             {name: "v_squish_and_bounce", newState: func() animState { return &verticalSquishBounce{duration: 16} }},
	AnimCircularStretchTwice:                {name: "circular_stretch_twice", newState: func() animState { return &circularStretchTwice{} }},
	AnimHorizontalVibrate:                   {name: "h_vibrate", newState: func() animState { return &horizontalVibrate{amplitude: 6} }},
	AnimHorizontalSlide:                     {name: "h_slide", newState: func() animState { return &horizontalSlide{duration: 40} }},
	AnimVerticalSlide:                       {name: "v_slide", newState: func() animState { return &verticalSlide{duration: 40} }},
	AnimBounceRotateToSides:                 {name: "bounce_rotate_to_sides", newState: func() animState { return &bounceRotateToSides{rotation: 4096} }},
	AnimVerticalJumpsHorizontalJumps:        {name: "v_jumps_h_jumps", newState: func() animState { return &verticalJumpsHorizontalJumps{} }},
	AnimRotateToSides:                       {name: "rotate_to_sides", unused: true, newState: func() animState { return &rotateToSides{speed: 2, runs: 1} }},
	AnimRotateToSidesTwice:                  {name: "rotate_to_sides_twice", newState: func() animState { return &rotateToSides{speed: 4, runs: 2} }},
	AnimGrowVibrate:                         {name: "grow_vibrate", newState: func() animState { return &growVibrate{} }},
	AnimZigzagFast:                          {name: "zigzag_fast", newState: func() animState { return &zigzag{} }},
	AnimSwingConcave:                        {name: "swing_concave", newState: func() animState { return &swing{duration: 100, runs: 1} }},
	AnimSwingConcaveFast:                    {name: "swing_concave_fast", newState: func() animState { return &swing{duration: 50, runs: 2} }},
	AnimSwingConvex:                         {name: "swing_convex", newState: func() animState { return &swing{duration: 100, runs: 1, convex: true} }},
	AnimSwingConvexFast:                     {name: "swing_convex_fast", newState: func() animState { return &swing{duration: 50, runs: 2, convex: true} }},
	AnimHorizontalShake:                     {name: "h_shake", newState: func() animState { return &horizontalShake{speed: 60, amplitude: 3} }},
	AnimVerticalShake:                       {name: "v_shake", newState: func() animState { return &verticalShake{speed: 60} }},
	AnimCircularVibrate:                     {name: "circular_vibrate", newState: func() animState { return &circularVibrate{} }},
	AnimTwist:                               {name: "twist", newState: func() animState { return &twist{rotation: 512, runs: 1} }},
	AnimShrinkGrow:                          {name: "shrink_grow", newState: func() animState { return &shrinkGrow{runs: 3, speed: 8} }},
	AnimCircleCounterclockwise:              {name: "circle_c_clockwise", newState: func() animState { return &circleCounterclockwise{rotation: 512, radius: 6, speed: 24} }},
	AnimGlowBlack:                           {name: "glow_black", newState: func() animState { return &glowColor{color: palette.Black, coeffMax: 16, speed: 1} }},
	AnimHorizontalStretch:                   {name: "h_stretch", newState: func() animState { return &horizontalStretch{} }},
	AnimVerticalStretch:                     {name: "v_stretch", newState: func() animState { return &verticalStretch{} }},
	AnimRisingWobble:                        {name: "rising_wobble", newState: func() animState { return &risingWobble{amplitude: 5} }},
	AnimVerticalShakeTwice:                  {name: "v_shake_twice", newState: func() animState { return &verticalShakeTwice{speed: 48} }},
	AnimTipMoveForward:                      {name: "tip_move_forward", newState: func() animState { return &tipMoveForward{} }},
	AnimHorizontalPivot:                     {name: "h_pivot", newState: func() animState { return &horizontalPivot{} }},
	AnimVerticalSlideWobble:                 {name: "v_slide_wobble", newState: func() animState { return &verticalSlideWobble{amplitude: 10} }},
	AnimHorizontalSlideWobble:               {name: "h_slide_wobble", newState: func() animState { return &horizontalSlideWobble{} }},
	AnimVerticalJumpsBig:                    {name: "v_jumps_big", newState: func() animState { return &verticalJumps{height: 4} }},
	AnimSpinLong:                            {name: "spin_long", unused: true, newState: func() animState { return &spin{duration: 60, divisor: 20} }},
	AnimGlowOrange:                          {name: "glow_orange", newState: func() animState { return &glowColor{color: palette.Orange, coeffMax: 12, speed: 2} }},
	AnimGlowRed:                             {name: "glow_red", unused: true, newState: func() animState { return &glowColor{color: palette.Red, coeffMax: 12, speed: 2} }},
	AnimGlowBlue:                            {name: "glow_blue", newState: func() animState { return &glowColor{color: palette.Blue, coeffMax: 12, speed: 2} }},
	AnimGlowYellow:                          {name: "glow_yellow", unused: true, newState: func() animState { return &glowColor{color: palette.Yellow, coeffMax: 12, speed: 2} }},
	AnimGlowPurple:                          {name: "glow_purple", unused: true, newState: func() animState { return &glowColor{color: palette.Purple, coeffMax: 12, speed: 2} }},
	AnimBackAndLunge:                        {name: "back_and_lunge", newState: func() animState { return &backAndLunge{} }},
	AnimBackFlip:                            {name: "back_flip", unused: true, newState: func() animState { return &backFlip{} }},
	AnimFlicker:                             {name: "flicker", unused: true, newState: func() animState { return &flicker{} }},
	AnimBackFlipBig:                         {name: "back_flip_big", unused: true, newState: func() animState { return &backFlipBig{} }},
	AnimFrontFlip:                           {name: "front_flip", newState: func() animState { return &frontFlip{} }},
	AnimTumblingFrontFlip:                   {name: "tumbling_front_flip", unused: true, newState: func() animState { return &tumblingFrontFlip{speed: 2, runs: 1} }},
	AnimFigure8:                             {name: "figure_8", newState: func() animState { return &figure8{} }},
	AnimFlashYellow:                         {name: "flash_yellow", newState: func() animState { return newFlashYellow() }},
	AnimSwingConcaveFastShort:               {name: "swing_concave_fast_short", newState: func() animState { return &swing{duration: 50, runs: 1} }},
	AnimSwingConvexFastShort:                {name: "swing_convex_fast_short", unused: true, newState: func() animState { return &swing{duration: 50, runs: 1, convex: true} }},
	AnimRotateUpSlamDown:                    {name: "rotate_up_slam_down", newState: func() animState { return &rotateUpSlamDown{} }},
	AnimDeepVerticalSquishAndBounce:         {name: "deep_v_squish_and_bounce", newState: func() animState { return &deepVerticalSquishBounce{runs: 1} }},
	AnimHorizontalJumps:                     {name: "h_jumps", newState: func() animState { return &horizontalJumps{} }},
	AnimHorizontalJumpsVerticalStretch:      {name: "h_jumps_v_stretch", newState: func() animState { return &horizontalJumpsVerticalStretch{direction: -1, runs: 1} }},
	AnimRotateToSidesFast:                   {name: "rotate_to_sides_fast", unused: true, newState: func() animState { return &rotateToSides{speed: 4, runs: 1} }},
	AnimRotateUpToSides:                     {name: "rotate_up_to_sides", newState: func() animState { return &rotateUpToSides{} }},
	AnimFlickerIncreasing:                   {name: "flicker_increasing", newState: func() animState { return &flickerIncreasing{} }},
	AnimTipHopForward:                       {name: "tip_hop_forward", unused: true, newState: func() animState { return &tipHopForward{} }},
	AnimPivotShake:                          {name: "pivot_shake", unused: true, newState: func() animState { return &pivotShake{} }},
	AnimTipAndShake:                         {name: "tip_and_shake", unused: true, newState: func() animState { return &tipAndShake{} }},
	AnimVibrateToCorners:                    {name: "vibrate_to_corners", unused: true, newState: func() animState { return &vibrateToCorners{} }},
	AnimGrowInStages:                        {name: "grow_in_stages", newState: func() animState { return &growInStages{} }},
	AnimVerticalSpring:                      {name: "v_spring", unused: true, newState: func() animState { return &verticalSpring{} }},
	AnimVerticalRepeatedSpring:              {name: "v_repeated_spring", unused: true, newState: func() animState { return &verticalSpring{repeated: true} }},
	AnimSpringRising:                        {name: "spring_rising", unused: true, newState: func() animState { return &springRising{} }},
	AnimHorizontalSpring:                    {name: "h_spring", newState: func() animState { return &horizontalSpring{speed: 8, bound: 512, amplitude: 8} }},
	AnimHorizontalRepeatedSpringSlow:        {name: "h_repeated_spring_slow", newState: func() animState { return &horizontalSpring{speed: 4, bound: 256, amplitude: 16, repeated: true} }},
	AnimHorizontalSlideShrink:               {name: "h_slide_shrink", unused: true, newState: func() animState { return newHorizontalSlideShrink() }},
	AnimLungeGrow:                           {name: "lunge_grow", newState: func() animState { return newLungeGrow() }},
	AnimCircleIntoBackground:                {name: "circle_into_bg", newState: func() animState { return newCircleIntoBackground() }},
	AnimRapidHorizontalHops:                 {name: "rapid_h_hops", newState: func() animState { return &rapidHorizontalHops{} }},
	AnimFourPetal:                           {name: "four_petal", newState: func() animState { return &fourPetal{} }},
	AnimVerticalSquishAndBounceSlow:         {name: "v_squish_and_bounce_slow", newState: func() animState { return &verticalSquishBounce{duration: 32} }},
	AnimHorizontalSlideSlow:                 {name: "h_slide_slow", newState: func() animState { return &horizontalSlide{duration: 80} }},
	AnimVerticalSlideSlow:                   {name: "v_slide_slow", newState: func() animState { return &verticalSlide{duration: 80} }},
	AnimBounceRotateToSidesSmall:            {name: "bounce_rotate_to_sides_small", newState: func() animState { return &bounceRotateToSides{rotation: 2048} }},
	AnimBounceRotateToSidesSlow:             {name: "bounce_rotate_to_sides_slow", newState: func() animState { return &bounceRotateToSides{rotation: 4096, tempo: 1} }},
	AnimBounceRotateToSidesSmallSlow:        {name: "bounce_rotate_to_sides_small_slow", newState: func() animState { return &bounceRotateToSides{rotation: 2048, tempo: 1} }},
	AnimZigzagSlow:                          {name: "zigzag_slow", newState: func() animState { return &zigzagSlow{} }},
	AnimHorizontalShakeSlow:                 {name: "h_shake_slow", newState: func() animState { return &horizontalShake{speed: 30, amplitude: 3} }},
	AnimVerticalShakeSlow:                   {name: "v_shake_slow", unused: true, newState: func() animState { return &verticalShake{speed: 30} }},
	AnimTwistTwice:                          {name: "twist_twice", newState: func() animState { return &twist{rotation: 1024, runs: 2} }},
	AnimCircleCounterclockwiseSlow:          {name: "circle_c_clockwise_slow", newState: func() animState { return &circleCounterclockwise{rotation: 512, radius: 3, speed: 12} }},
	AnimVerticalShakeTwiceSlow:              {name: "v_shake_twice_slow", unused: true, newState: func() animState { return &verticalShakeTwice{speed: 24} }},
	AnimVerticalSlideWobbleSmall:            {name: "v_slide_wobble_small", newState: func() animState { return &verticalSlideWobble{amplitude: 5} }},
	AnimVerticalJumpsSmall:                  {name: "v_jumps_small", newState: func() animState { return &verticalJumps{height: 3} }},
	AnimSpin:                                {name: "spin", newState: func() animState { return &spin{duration: 60, divisor: 30} }},
	AnimTumblingFrontFlipTwice:              {name: "tumbling_front_flip_twice", newState: func() animState { return &tumblingFrontFlip{speed: 1, runs: 2} }},
	AnimDeepVerticalSquishAndBounceTwice:    {name: "deep_v_squish_and_bounce_twice", unused: true, newState: func() animState { return &deepVerticalSquishBounce{runs: 2} }},
	AnimHorizontalJumpsVerticalStretchTwice: {name: "h_jumps_v_stretch_twice", newState: func() animState { return &horizontalJumpsVerticalStretch{direction: 1, runs: 2} }},
	AnimVerticalShakeBack:                   {name: "v_shake_back", newState: func() animState { return &verticalShakeBack{speed: 60, amplitude: 3} }},
	AnimVerticalShakeBackSlow:               {name: "v_shake_back_slow", newState: func() animState { return &verticalShakeBack{speed: 30, amplitude: 3} }},
	AnimVerticalShakeHorizontalSlideSlow:    {name: "v_shake_h_slide_slow", newState: func() animState { return &verticalShakeHorizontalSlide{speed: 24, yPeriod: 128} }},
	AnimVerticalStretchBothEndsSlow:         {name: "v_stretch_both_ends_slow", newState: func() animState { return &stretchPulse{shape: stretchBothEnds, runs: 1, duration: 40, amplitude: 40} }},
	AnimHorizontalStretchFarSlow:            {name: "h_stretch_far_slow", newState: func() animState { return &stretchPulse{shape: stretchFar, runs: 1, duration: 40, amplitude: 40} }},
	AnimVerticalShakeLowTwice:               {name: "v_shake_low_twice", newState: func() animState { return &verticalShakeLowTwice{speed: 40, amplitude: 6} }},
	AnimHorizontalShakeFast:                 {name: "h_shake_fast", newState: func() animState { return &horizontalShake{speed: 70, amplitude: 6} }},
	AnimHorizontalSlideFast:                 {name: "h_slide_fast", newState: func() animState { return &horizontalSlide{duration: 20} }},
	AnimHorizontalVibrateFast:               {name: "h_vibrate_fast", newState: func() animState { return &horizontalVibrate{amplitude: 9} }},
	AnimHorizontalVibrateFastest:            {name: "h_vibrate_fastest", newState: func() animState { return &horizontalVibrate{amplitude: 12} }},
	AnimVerticalShakeBackFast:               {name: "v_shake_back_fast", newState: func() animState { return &verticalShakeBack{speed: 70, amplitude: 6} }},
	AnimVerticalShakeLowTwiceSlow:           {name: "v_shake_low_twice_slow", newState: func() animState { return &verticalShakeLowTwice{speed: 24, amplitude: 6} }},
	AnimVerticalShakeLowTwiceFast:           {name: "v_shake_low_twice_fast", newState: func() animState { return &verticalShakeLowTwice{speed: 56, amplitude: 9} }},
	AnimCircleCounterclockwiseLong:          {name: "circle_c_clockwise_long", newState: func() animState { return &circleCounterclockwise{rotation: 1024, radius: 6, speed: 24} }},
	AnimGrowStutterSlow:                     {name: "grow_stutter_slow", newState: func() animState { return &stretchPulse{shape: stretchStutter, runs: 1, duration: 40, amplitude: 40} }},
	AnimVerticalShakeHorizontalSlide:        {name: "v_shake_h_slide", newState: func() animState { return &verticalShakeHorizontalSlide{speed: 48, yPeriod: 128} }},
	AnimVerticalShakeHorizontalSlideFast:    {name: "v_shake_h_slide_fast", newState: func() animState { return &verticalShakeHorizontalSlide{speed: 64, yPeriod: 96} }},
	AnimTriangleDownSlow:                    {name: "triangle_down_slow", newState: func() animState { return &triangleDown{divisor: 1, runs: 1} }},
	AnimTriangleDown:                        {name: "triangle_down", newState: func() animState { return &triangleDown{divisor: 2, runs: 1} }},
	AnimTriangleDownTwice:                   {name: "triangle_down_twice", newState: func() animState { return &triangleDown{divisor: 2, runs: 2} }},
	AnimGrow:                                {name: "grow", newState: func() animState { return &grow{speed: 4, runs: 1} }},
	AnimGrowTwice:                           {name: "grow_twice", newState: func() animState { return &grow{speed: 8, runs: 2} }},
	AnimHorizontalSpringFast:                {name: "h_spring_fast", newState: func() animState { return &horizontalSpring{speed: 8, bound: 512, amplitude: 16} }},
	AnimHorizontalSpringSlow:                {name: "h_spring_slow", newState: func() animState { return &horizontalSpring{speed: 4, bound: 256, amplitude: 16} }},
	AnimHorizontalRepeatedSpringFast:        {name: "h_repeated_spring_fast", newState: func() animState { return &horizontalSpring{speed: 8, bound: 512, amplitude: 16, repeated: true} }},
	AnimHorizontalRepeatedSpring:            {name: "h_repeated_spring", newState: func() animState { return &horizontalSpring{speed: 8, bound: 512, amplitude: 8, repeated: true} }},
	AnimShrinkGrowFast:                      {name: "shrink_grow_fast", newState: func() animState { return &shrinkGrow{runs: 5, speed: 8} }},
	AnimShrinkGrowSlow:                      {name: "shrink_grow_slow", newState: func() animState { return &shrinkGrow{runs: 3, speed: 4} }},
	AnimVerticalStretchBothEnds:             {name: "v_stretch_both_ends", newState: func() animState { return &stretchPulse{shape: stretchBothEnds, runs: 1, duration: 30, amplitude: 60} }},
	AnimVerticalStretchBothEndsTwice:        {name: "v_stretch_both_ends_twice", newState: func() animState { return &stretchPulse{shape: stretchBothEnds, runs: 2, duration: 20, amplitude: 70} }},
	AnimHorizontalStretchFarTwice:           {name: "h_stretch_far_twice", newState: func() animState { return &stretchPulse{shape: stretchFar, runs: 2, duration: 20, amplitude: 70} }},
	AnimHorizontalStretchFar:                {name: "h_stretch_far", newState: func() animState { return &stretchPulse{shape: stretchFar, runs: 1, duration: 30, amplitude: 60} }},
	AnimGrowStutterTwice:                    {name: "grow_stutter_twice", newState: func() animState { return &stretchPulse{shape: stretchStutter, runs: 2, duration: 20, amplitude: 70} }},
	AnimGrowStutter:                         {name: "grow_stutter", newState: func() animState { return &stretchPulse{shape: stretchStutter, runs: 1, duration: 30, amplitude: 60} }},
	AnimConcaveArcLargeSlow:                 {name: "concave_arc_large_slow", newState: func() animState { return &concaveArc{runs: 1, xAmp: 12, yAmp: 12, speed: 4} }},
	AnimConcaveArcLarge:                     {name: "concave_arc_large", newState: func() animState { return &concaveArc{runs: 1, xAmp: 12, yAmp: 12, speed: 6} }},
	AnimConcaveArcLargeTwice:                {name: "concave_arc_large_twice", newState: func() animState { return &concaveArc{runs: 2, xAmp: 12, yAmp: 12, speed: 8} }},
	AnimConvexDoubleArcSlow:                 {name: "convex_double_arc_slow", newState: func() animState { return &convexDoubleArc{runs: 2, xAmp: 16, leg: 1, speed: 4} }},
	AnimConvexDoubleArc:                     {name: "convex_double_arc", newState: func() animState { return &convexDoubleArc{runs: 2, xAmp: 16, leg: 1, speed: 6} }},
	AnimConvexDoubleArcTwice:                {name: "convex_double_arc_twice", newState: func() animState { return &convexDoubleArc{runs: 3, xAmp: 16, leg: 1, speed: 8} }},
	AnimConcaveArcSmallSlow:                 {name: "concave_arc_small_slow", newState: func() animState { return &concaveArc{runs: 1, xAmp: 4, yAmp: 6, speed: 4} }},
	AnimConcaveArcSmall:                     {name: "concave_arc_small", newState: func() animState { return &concaveArc{runs: 1, xAmp: 4, yAmp: 6, speed: 6} }},
	AnimConcaveArcSmallTwice:                {name: "concave_arc_small_twice", newState: func() animState { return &concaveArc{runs: 2, xAmp: 4, yAmp: 6, speed: 8} }},
	AnimHorizontalDip:                       {name: "h_dip", newState: func() animState { return &horizontalDip{duration: 60, amplitude: 8, radius: -32, runs: 1} }},
	AnimHorizontalDipFast:                   {name: "h_dip_fast", newState: func() animState { return &horizontalDip{duration: 90, amplitude: 8, radius: -32, runs: 1} }},
	AnimHorizontalDipTwice:                  {name: "h_dip_twice", newState: func() animState { return &horizontalDip{duration: 30, amplitude: 8, radius: -32, runs: 2} }},
	AnimShrinkGrowVibrateFast:               {name: "shrink_grow_vibrate_fast", newState: func() animState { return &shrinkGrowVibrate{period: 40, duration: 80} }},
	AnimShrinkGrowVibrate:                   {name: "shrink_grow_vibrate", newState: func() animState { return &shrinkGrowVibrate{period: 40, duration: 40} }},
	AnimShrinkGrowVibrateSlow:               {name: "shrink_grow_vibrate_slow", newState: func() animState { return &shrinkGrowVibrate{period: 80, duration: 80} }},
	AnimJoltRightFast:                       {name: "jolt_right_fast", newState: func() animState { return &joltRight{reach: 12, shakes: 16, shakeAmp: 4, pullback: 2} }},
	AnimJoltRight:                           {name: "jolt_right", newState: func() animState { return &joltRight{reach: 8, shakes: 12, shakeAmp: 2, pullback: 1} }},
	AnimJoltRightSlow:                       {name: "jolt_right_slow", newState: func() animState { return &joltRight{reach: 6, shakes: 6, shakeAmp: 2, pullback: 1} }},
	AnimShakeFlashYellowFast:                {name: "shake_flash_yellow_fast", newState: func() animState { return newShakeFlashYellow(0) }},
	AnimShakeFlashYellow:                    {name: "shake_flash_yellow", newState: func() animState { return newShakeFlashYellow(1) }},
	AnimShakeFlashYellowSlow:                {name: "shake_flash_yellow_slow", newState: func() animState { return newShakeFlashYellow(2) }},
	AnimShakeGlowRedFast:                    {name: "shake_glow_red_fast", newState: func() animState { return &shakeGlow{color: palette.Red, period: 10, runs: 2} }},
	AnimShakeGlowRed:                        {name: "shake_glow_red", newState: func() animState { return &shakeGlow{color: palette.Red, period: 20, runs: 1} }},
	AnimShakeGlowRedSlow:                    {name: "shake_glow_red_slow", newState: func() animState { return &shakeGlow{color: palette.Red, period: 80, runs: 1} }},
	AnimShakeGlowGreenFast:                  {name: "shake_glow_green_fast", newState: func() animState { return &shakeGlow{color: palette.Green, period: 10, runs: 2} }},
	AnimShakeGlowGreen:                      {name: "shake_glow_green", newState: func() animState { return &shakeGlow{color: palette.Green, period: 20, runs: 1} }},
	AnimShakeGlowGreenSlow:                  {name: "shake_glow_green_slow", newState: func() animState { return &shakeGlow{color: palette.Green, period: 80, runs: 1} }},
	AnimShakeGlowBlueFast:                   {name: "shake_glow_blue_fast", newState: func() animState { return &shakeGlow{color: palette.Blue, period: 10, runs: 2} }},
	AnimShakeGlowBlue:                       {name: "shake_glow_blue", newState: func() animState { return &shakeGlow{color: palette.Blue, period: 20, runs: 1} }},
	AnimShakeGlowBlueSlow:                   {name: "shake_glow_blue_slow", newState: func() animState { return &shakeGlow{color: palette.Blue, period: 80, runs: 1} }},
	AnimShakeGlowBlackSlow:                  {name: "shake_glow_black_slow", newState: func() animState { return &shakeGlow{color: palette.Black, period: 80, runs: 1} }},
	AnimShakeGlowWhiteSlow:                  {name: "shake_glow_white_slow", newState: func() animState { return &shakeGlow{color: palette.White, period: 80, runs: 1} }},
	AnimShakeGlowPurpleSlow:                 {name: "shake_glow_purple_slow", newState: func() animState { return &shakeGlow{color: palette.Purple, period: 80, runs: 1} }},
}

// AnimInfo 动画目录项的公开描述
type AnimInfo struct {
	ID   AnimID
	Name string
	// Unused 没有物种使用该动画
	Unused bool
}

// Info 查询动画目录项
//
// 参数：
//   - id: 动画编号
//
// 返回：
//   - AnimInfo: 目录项
//   - error: 编号越界时返回 *InvalidAnimationIDError
func Info(id AnimID) (AnimInfo, error) {
	if !id.Valid() {
		return AnimInfo{}, &InvalidAnimationIDError{ID: id}
	}
	e := catalog[id]
	return AnimInfo{ID: id, Name: e.name, Unused: e.unused}, nil
}

// Catalog 返回全部目录项，按编号排列
func Catalog() []AnimInfo {
	infos := make([]AnimInfo, 0, AnimCount)
	for i := range catalog {
		infos = append(infos, AnimInfo{ID: AnimID(i), Name: catalog[i].name, Unused: catalog[i].unused})
	}
	return infos
}

// PublicIDs 返回被物种表引用的动画编号
func PublicIDs() []AnimID {
	ids := make([]AnimID, 0, AnimCount)
	for i := range catalog {
		if !catalog[i].unused {
			ids = append(ids, AnimID(i))
		}
	}
	return ids
}

// String 便于日志输出
func (i AnimInfo) String() string {
	if i.Unused {
		return fmt.Sprintf("#%d %s (unused)", int(i.ID), i.Name)
	}
	return fmt.Sprintf("#%d %s", int(i.ID), i.Name)
}
