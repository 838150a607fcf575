package monanim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/utils"
)

// maxSteps 任何动画都应在此帧数内结束
const maxSteps = 5000

// runUntilComplete 每帧 Step 直到终止，返回用掉的帧数，超限返回 -1
func runUntilComplete(e *Engine, s *Sprite) int {
	for i := 1; i <= maxSteps; i++ {
		e.Step(s)
		if e.IsAnimationComplete(s) {
			return i
		}
	}
	return -1
}

func newTestSprite() *Sprite {
	return NewSprite(64, 64)
}

// TestEveryAnimationTerminates 测试目录中每个动画都会进入终止状态
func TestEveryAnimationTerminates(t *testing.T) {
	for _, info := range Catalog() {
		info := info
		t.Run(info.Name, func(t *testing.T) {
			for _, mirrored := range []bool{false, true} {
				e := NewEngine(nil, nil)
				s := newTestSprite()
				s.Mirrored = mirrored
				require.NoError(t, e.LaunchSummary(s, info.ID))
				assert.True(t, s.Running())

				steps := runUntilComplete(e, s)
				assert.Greater(t, steps, 0, "mirrored=%v 没有在 %d 帧内结束", mirrored, maxSteps)
			}
		})
	}
}

// TestNeutralResetAfterCompletion 测试动画结束后偏移和仿射回到中性状态
func TestNeutralResetAfterCompletion(t *testing.T) {
	for _, info := range Catalog() {
		info := info
		t.Run(info.Name, func(t *testing.T) {
			e := NewEngine(nil, nil)
			s := newTestSprite()
			task, err := e.LaunchFront(s, info.ID)
			require.NoError(t, err)

			for i := 0; i < maxSteps && !task.Done(); i++ {
				e.Step(s)
				task.Update()
			}
			require.True(t, task.Done())

			assert.Equal(t, 0, int(s.X2))
			assert.Equal(t, 0, int(s.Y2))
			assert.Equal(t, IdentityAffine, s.Affine)
			assert.False(t, s.Invisible)
			assert.Equal(t, 0, e.Pool.InUse(), "槽位应已归还")
		})
	}
}

// TestSummaryNeutralAffineKeepsFacing 测试图鉴模式下镜像精灵结束时保持朝向
func TestSummaryNeutralAffineKeepsFacing(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.Mirrored = true
	require.NoError(t, e.LaunchSummary(s, AnimTwist))
	require.Greater(t, runUntilComplete(e, s), 0)

	assert.Equal(t, int16(-utils.AffineIdentityScale), s.Affine.XScale)
	assert.Equal(t, int16(utils.AffineIdentityScale), s.Affine.YScale)
	assert.Equal(t, uint16(0), s.Affine.Rotation)
	assert.True(t, s.HFlip)
	assert.False(t, s.MatrixAllocated)
	assert.Equal(t, AffineOff, s.AffineMode)
	assert.False(t, s.AffineEnabled())
}

// TestBattleAffineStaysNormal 测试战斗模式下仿射动画结束后保留普通仿射模式
func TestBattleAffineStaysNormal(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	require.NoError(t, e.LaunchSummary(s, AnimTwist))
	s.run.summary = false
	require.Greater(t, runUntilComplete(e, s), 0)

	assert.Equal(t, AffineNormal, s.AffineMode)
	assert.True(t, s.MatrixAllocated)
	assert.Equal(t, IdentityAffine, s.Affine)
}

// TestMirrorSymmetryOffsets 测试目录中每个动画镜像播放时水平偏移逐帧取反、垂直偏移不变
func TestMirrorSymmetryOffsets(t *testing.T) {
	moving := 0
	for _, info := range Catalog() {
		info := info
		t.Run(info.Name, func(t *testing.T) {
			eu, em := NewEngine(nil, nil), NewEngine(nil, nil)
			u, m := newTestSprite(), newTestSprite()
			m.Mirrored = true
			require.NoError(t, eu.LaunchSummary(u, info.ID))
			require.NoError(t, em.LaunchSummary(m, info.ID))

			sawOffset := false
			for i := 0; i < maxSteps && !eu.IsAnimationComplete(u); i++ {
				eu.Step(u)
				em.Step(m)
				require.Equal(t, -u.X2, m.X2, "第 %d 帧", i+1)
				require.Equal(t, u.Y2, m.Y2, "第 %d 帧", i+1)
				if u.X2 != 0 {
					sawOffset = true
				}
			}
			assert.True(t, eu.IsAnimationComplete(u))
			assert.True(t, em.IsAnimationComplete(m), "镜像播放应在同一帧结束")
			if sawOffset {
				moving++
			}
		})
	}
	assert.Greater(t, moving, 29, "水平移动的动画应全部参与比较")
}

// TestMirrorAbsoluteXWriters 测试直接写入水平偏移的抖动、弹簧、弧线、压低和闪黄晃动在镜像时取反
func TestMirrorAbsoluteXWriters(t *testing.T) {
	ids := []AnimID{
		AnimHorizontalVibrate,
		AnimHorizontalShake,
		AnimCircularVibrate,
		AnimVerticalJumpsHorizontalJumps,
		AnimHorizontalSpring,
		AnimHorizontalRepeatedSpring,
		AnimConcaveArcLarge,
		AnimConvexDoubleArc,
		AnimHorizontalDip,
		AnimShakeFlashYellow,
	}
	for _, id := range ids {
		eu, em := NewEngine(nil, nil), NewEngine(nil, nil)
		u, m := newTestSprite(), newTestSprite()
		m.Mirrored = true
		require.NoError(t, eu.LaunchSummary(u, id))
		require.NoError(t, em.LaunchSummary(m, id))

		for i := 0; i < 8; i++ {
			eu.Step(u)
			em.Step(m)
			assert.Equal(t, -u.X2, m.X2, "%s 第 %d 帧", id, i+1)
		}
	}
}

// TestMirrorSymmetryAffine 测试镜像精灵的水平缩放和旋转逐帧取反
func TestMirrorSymmetryAffine(t *testing.T) {
	eu, em := NewEngine(nil, nil), NewEngine(nil, nil)
	u, m := newTestSprite(), newTestSprite()
	m.Mirrored = true
	require.NoError(t, eu.LaunchSummary(u, AnimTwist))
	require.NoError(t, em.LaunchSummary(m, AnimTwist))

	for i := 0; i < maxSteps && !eu.IsAnimationComplete(u); i++ {
		eu.Step(u)
		em.Step(m)
		require.Equal(t, -u.Affine.XScale, m.Affine.XScale, "第 %d 帧", i+1)
		require.Equal(t, u.Affine.YScale, m.Affine.YScale, "第 %d 帧", i+1)
		require.Equal(t, -u.Affine.Rotation, m.Affine.Rotation, "第 %d 帧", i+1)
	}
}

// TestHorizontalSlideScenario 测试水平滑动的逐帧偏移
func TestHorizontalSlideScenario(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	require.NoError(t, e.LaunchSummary(s, AnimHorizontalSlide))

	for tick := 0; tick <= 40; tick++ {
		e.Step(s)
		want := utils.Sin((tick*384/40)%256, 6)
		require.Equal(t, want, int(s.X2), "tick %d", tick)
		require.Equal(t, 0, int(s.Y2))
		require.True(t, s.Running(), "tick %d", tick)
	}

	// tick 41 变换结束
	e.Step(s)
	assert.True(t, s.Finished())
	assert.False(t, e.IsAnimationComplete(s))
	assert.Equal(t, 0, int(s.X2))

	e.Step(s)
	assert.True(t, e.IsAnimationComplete(s))
	assert.Equal(t, 0, int(s.X2))
}

// TestFinishWaitsForFrameAnimation 测试帧动画未播完时停留在等待状态
func TestFinishWaitsForFrameAnimation(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.FrameAnimEnded = false
	require.NoError(t, e.LaunchSummary(s, AnimHorizontalSlide))

	for i := 0; i < 100; i++ {
		e.Step(s)
	}
	assert.True(t, s.Finished())
	assert.False(t, e.IsAnimationComplete(s))

	s.FrameAnimEnded = true
	e.Step(s)
	assert.True(t, e.IsAnimationComplete(s))
}

// TestTwistTwiceScenario 测试两次扭动之间有 10 帧停顿且曲线完全重放
func TestTwistTwiceScenario(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	require.NoError(t, e.LaunchSummary(s, AnimTwistTwice))

	rotations := make(map[int]uint16)
	for step := 1; step <= 141; step++ {
		e.Step(s)
		rotations[step] = s.Affine.Rotation
		if step < 141 {
			require.True(t, s.Running(), "step %d", step)
		}
	}
	assert.True(t, s.Finished())

	// 第一次在第 66 帧结束并回到单位矩阵，随后 10 帧停顿
	for step := 66; step <= 76; step++ {
		assert.Equal(t, uint16(0), rotations[step], "停顿帧 %d", step)
	}

	// 第二次从 timer=16 开始，与第一次的第 2..65 帧一致
	for i := 0; i < 64; i++ {
		assert.Equal(t, rotations[2+i], rotations[77+i], "重放偏移 %d", i)
	}
	assert.NotEqual(t, uint16(0), rotations[10])

	e.Step(s)
	assert.True(t, e.IsAnimationComplete(s))
}

// TestInvalidAnimationID 测试非法编号的两种处理方式
func TestInvalidAnimationID(t *testing.T) {
	t.Run("release", func(t *testing.T) {
		e := NewEngine(nil, nil)
		s := newTestSprite()
		err := e.LaunchSummary(s, AnimCount+3)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAnimationID))
		var idErr *InvalidAnimationIDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, AnimCount+3, idErr.ID)
		assert.True(t, e.IsAnimationComplete(s))

		assert.NotPanics(t, func() { e.Step(s) })
		assert.Equal(t, 0, int(s.X2))
	})

	t.Run("strict", func(t *testing.T) {
		e := NewEngine(nil, nil)
		e.Strict = true
		s := newTestSprite()
		assert.Panics(t, func() { _ = e.LaunchSummary(s, AnimID(-7)) })
	})

	t.Run("none", func(t *testing.T) {
		e := NewEngine(nil, nil)
		e.Strict = true
		s := newTestSprite()
		assert.NoError(t, e.LaunchSummary(s, AnimNone))
		assert.True(t, e.IsAnimationComplete(s))
	})
}

// TestRelaunchReplacesRunningAnimation 测试重复启动会覆盖正在运行的动画
func TestRelaunchReplacesRunningAnimation(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	require.NoError(t, e.LaunchSummary(s, AnimTwist))
	e.Step(s)
	require.Equal(t, 1, e.Pool.InUse())

	require.NoError(t, e.LaunchSummary(s, AnimHorizontalSlide))
	assert.Equal(t, AnimHorizontalSlide, s.CurrentAnim())
	assert.Equal(t, 0, e.Pool.InUse(), "被替换动画的槽位应归还")
}

// TestResetToNeutral 测试中途强制复位
func TestResetToNeutral(t *testing.T) {
	buf := palette.NewBuffer()
	colors := []palette.Color{palette.RGB(10, 10, 10), palette.RGB(20, 5, 0)}
	require.NoError(t, buf.LoadObjectPalette(1, colors))

	e := NewEngine(nil, buf)
	s := newTestSprite()
	s.PaletteNum = 1
	require.NoError(t, e.LaunchSummary(s, AnimShakeGlowRed))
	for i := 0; i < 90; i++ {
		e.Step(s)
	}
	require.True(t, s.Running())
	require.NotEqual(t, colors, buf.ObjectPalette(1)[:2])

	e.ResetToNeutral(s)
	assert.True(t, e.IsAnimationComplete(s))
	assert.Equal(t, 0, int(s.X2))
	assert.Equal(t, 0, int(s.Y2))
	assert.Equal(t, colors, buf.ObjectPalette(1)[:2])
}

// TestPaletteRestoredAfterCompletion 测试调色动画结束后调色板恢复原色
func TestPaletteRestoredAfterCompletion(t *testing.T) {
	colors := []palette.Color{
		palette.RGB(3, 7, 11), palette.RGB(31, 31, 31), palette.RGB(12, 0, 25), palette.RGB(0, 16, 8),
	}
	for _, info := range Catalog() {
		info := info
		t.Run(info.Name, func(t *testing.T) {
			buf := palette.NewBuffer()
			require.NoError(t, buf.LoadObjectPalette(3, colors))
			e := NewEngine(nil, buf)
			s := newTestSprite()
			s.PaletteNum = 3

			require.NoError(t, e.LaunchSummary(s, info.ID))
			require.Greater(t, runUntilComplete(e, s), 0)
			assert.Equal(t, colors, buf.ObjectPalette(3)[:len(colors)])
		})
	}
}

// TestGlowReachesTargetColor 测试发光动画中途确实改变了调色板
func TestGlowReachesTargetColor(t *testing.T) {
	buf := palette.NewBuffer()
	require.NoError(t, buf.LoadObjectPalette(0, []palette.Color{palette.White}))
	e := NewEngine(nil, buf)
	s := newTestSprite()
	require.NoError(t, e.LaunchSummary(s, AnimGlowBlack))

	darkest := palette.White
	for i := 0; i < maxSteps && !e.IsAnimationComplete(s); i++ {
		e.Step(s)
		if c := buf.ObjectPalette(0)[0]; c.R() < darkest.R() {
			darkest = c
		}
	}
	assert.Equal(t, palette.Black, darkest, "峰值系数为 16 时应完全变黑")
	assert.Equal(t, palette.White, buf.ObjectPalette(0)[0])
}

// TestFlickerRestoresVisibility 测试闪烁动画结束后精灵可见
func TestFlickerRestoresVisibility(t *testing.T) {
	for _, id := range []AnimID{AnimFlicker, AnimFlickerIncreasing} {
		e := NewEngine(nil, nil)
		s := newTestSprite()
		require.NoError(t, e.LaunchSummary(s, id))

		sawHidden := false
		for i := 0; i < maxSteps && !e.IsAnimationComplete(s); i++ {
			e.Step(s)
			if s.Invisible {
				sawHidden = true
			}
		}
		assert.True(t, sawHidden, "%s", id)
		assert.False(t, s.Invisible, "%s", id)
	}
}

// TestNewSpriteIsComplete 测试新建精灵处于终止状态
func TestNewSpriteIsComplete(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	assert.True(t, e.IsAnimationComplete(s))
	assert.Equal(t, AnimNone, s.CurrentAnim())
	assert.Equal(t, IdentityAffine, s.Affine)
	assert.False(t, s.Summary())

	e.Step(s)
	assert.True(t, e.IsAnimationComplete(s))
}
