package monanim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNatures 固定返回同一种性格
type stubNatures struct {
	nature Nature
	err    error
	asked  []int
}

func (n *stubNatures) NatureOf(battlerID int) (Nature, error) {
	n.asked = append(n.asked, battlerID)
	return n.nature, n.err
}

// runTask 按宿主的顺序每帧 Step 精灵再 Update 任务
func runTask(e *Engine, task *Task) int {
	for i := 1; i <= maxSteps; i++ {
		e.Step(task.Sprite)
		if task.Update() {
			return i
		}
	}
	return -1
}

// TestTaskRestoresSprite 测试任务结束后恢复精灵身份和镜像设置
func TestTaskRestoresSprite(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.Mirrored = true
	s.BattlerID = 2
	s.SpeciesID = 25

	task, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	assert.False(t, s.Mirrored, "战斗中的动画不镜像")
	assert.False(t, s.Summary())

	e.Step(s)
	e.Step(s)
	assert.Greater(t, int(s.X2), 0, "未镜像时向右滑动")
	s.BattlerID = 7
	s.SpeciesID = 0

	require.Greater(t, runTask(e, task), 0)
	assert.True(t, task.Done())
	assert.True(t, s.Mirrored)
	assert.Equal(t, 2, s.BattlerID)
	assert.Equal(t, 25, s.SpeciesID)
	assert.True(t, task.Update(), "结束后继续返回 true")
}

// TestRelaunchKeepsMirrorSetting 测试动画进行中再次启动，结束后仍恢复最初的镜像设置
func TestRelaunchKeepsMirrorSetting(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.Mirrored = true

	first, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		e.Step(s)
		assert.False(t, first.Update())
	}

	second, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	assert.False(t, s.Mirrored)

	require.Greater(t, runTask(e, second), 0)
	assert.True(t, s.Mirrored, "应恢复第一次启动前的镜像设置")

	// 被替换的任务随后也会看到终止状态，恢复的是同一个值
	assert.True(t, first.Update())
	assert.True(t, s.Mirrored)

	// 恢复后再次启动，按新的设置记录
	s.Mirrored = false
	third, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	require.Greater(t, runTask(e, third), 0)
	assert.False(t, s.Mirrored)
}

// TestTaskAbandon 测试丢弃运行中的任务时立即恢复镜像设置
func TestTaskAbandon(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.Mirrored = true

	task, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	e.Step(s)
	task.Abandon()
	assert.True(t, s.Mirrored)
	assert.True(t, task.Done())

	// 之后的任务记录的是恢复后的值
	s.Mirrored = false
	next, err := e.LaunchFront(s, AnimHorizontalSlide)
	require.NoError(t, err)
	require.Greater(t, runTask(e, next), 0)
	assert.False(t, s.Mirrored)

	pending, err := e.LaunchFrontDelayed(s, AnimHorizontalSlide, 5)
	require.NoError(t, err)
	pending.Abandon()
	assert.True(t, pending.Pending(), "等待延迟的任务不受影响")
}

// TestLaunchFrontInvalid 测试非法编号的正面动画
func TestLaunchFrontInvalid(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()
	s.Mirrored = true

	task, err := e.LaunchFront(s, AnimCount)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAnimationID))
	require.NotNil(t, task)
	assert.True(t, task.Update())
	assert.True(t, s.Mirrored)
}

// TestLaunchFrontDelayed 测试延迟启动
func TestLaunchFrontDelayed(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()

	task, err := e.LaunchFrontDelayed(s, AnimHorizontalSlide, 3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		e.Step(s)
		assert.False(t, task.Update())
		assert.True(t, task.Pending())
		assert.Equal(t, AnimNone, s.CurrentAnim())
	}

	e.Step(s)
	assert.False(t, task.Update())
	assert.False(t, task.Pending())
	assert.Equal(t, AnimHorizontalSlide, s.CurrentAnim())

	require.Greater(t, runTask(e, task), 0)
	assert.Equal(t, 0, int(s.X2))
}

// TestLaunchFrontDelayedInvalid 测试延迟启动时编号立即检查
func TestLaunchFrontDelayedInvalid(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()

	task, err := e.LaunchFrontDelayed(s, AnimID(999), 10)
	assert.True(t, errors.Is(err, ErrInvalidAnimationID))
	assert.False(t, task.Pending())
	assert.True(t, task.Update())
}

// TestLaunchBackResolvesByNature 测试背面动画按性格修正值选择变体
func TestLaunchBackResolvesByNature(t *testing.T) {
	tests := []struct {
		name    string
		natures NatureLookup
		want    AnimID
	}{
		{"修正值 0", &stubNatures{nature: NatureHardy}, AnimHorizontalVibrateFastest},
		{"修正值 1", &stubNatures{nature: NatureBold}, AnimHorizontalVibrateFast},
		{"修正值 2", &stubNatures{nature: NatureLonely}, AnimHorizontalVibrate},
		{"未提供查询", nil, AnimHorizontalVibrateFastest},
		{"查询失败", &stubNatures{nature: NatureLonely, err: errors.New("no mon")}, AnimHorizontalVibrateFastest},
		{"性格越界", &stubNatures{nature: Nature(40)}, AnimHorizontalVibrateFastest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(nil, nil)
			e.Natures = tt.natures
			s := newTestSprite()
			s.BattlerID = 1

			task, err := e.LaunchBack(s, BackHorizontalVibrate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.CurrentAnim())
			assert.Greater(t, runTask(e, task), 0)
		})
	}
}

// TestLaunchBackAsksBattler 测试查询使用精灵的战斗位置
func TestLaunchBackAsksBattler(t *testing.T) {
	natures := &stubNatures{nature: NatureTimid}
	e := NewEngine(nil, nil)
	e.Natures = natures
	s := newTestSprite()
	s.BattlerID = 3

	_, err := e.LaunchBack(s, BackGrow)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, natures.asked)
	assert.Equal(t, AnimGrowInStages, s.CurrentAnim())
}

// TestLaunchBackInvalidSet 测试未定义的动画组让精灵保持静止
func TestLaunchBackInvalidSet(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSprite()

	task, err := e.LaunchBack(s, BackAnimSetCount)
	assert.True(t, errors.Is(err, ErrInvalidBackAnimSet))
	require.NotNil(t, task)
	assert.True(t, e.IsAnimationComplete(s))
	assert.True(t, task.Update())
}
