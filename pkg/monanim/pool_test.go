package monanim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPoolRoundRobin 测试槽位按环形顺序分配并在回绕时重置
func TestPoolRoundRobin(t *testing.T) {
	p := NewPool(4)

	first, slot := p.Claim()
	assert.Equal(t, 1, first)
	slot.Rotation = 4096
	slot.Delay = 7
	slot.Runs = 3

	var got []int
	for i := 0; i < 4; i++ {
		idx, _ := p.Claim()
		got = append(got, idx)
	}
	assert.Equal(t, []int{2, 3, 0, 1}, got)

	reused := p.Slot(first)
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Rotation)
	assert.Equal(t, 0, reused.Delay)
	assert.Equal(t, 1, reused.Runs)
	assert.Same(t, slot, reused, "槽位指向池内存储")
}

// TestPoolOverwriteCounter 测试调试模式下统计覆盖次数
func TestPoolOverwriteCounter(t *testing.T) {
	p := NewPool(2)
	p.Claim()
	p.Claim()
	p.Claim()
	assert.Equal(t, 0, p.Overwrites(), "未开启调试时不计数")

	p = NewPool(2)
	p.Debug = true
	p.Claim()
	_, b, owner := p.claim()
	p.release(slotClaim{slot: b, owner: owner})
	p.Claim()
	assert.Equal(t, 1, p.Overwrites(), "仍在使用的槽位被重新申请")
	p.Claim()
	assert.Equal(t, 1, p.Overwrites(), "已归还的槽位不计数")
	assert.Equal(t, 2, p.InUse())
}

// TestPoolStaleReleaseKeepsSlot 测试被覆盖后的旧持有者归还槽位不会释放新持有者
func TestPoolStaleReleaseKeepsSlot(t *testing.T) {
	p := NewPool(1)
	p.Debug = true

	_, slot, first := p.claim()
	_, again, second := p.claim()
	require.Same(t, slot, again)
	assert.Equal(t, 1, p.Overwrites())

	p.release(slotClaim{slot: slot, owner: first})
	assert.Equal(t, 1, p.InUse(), "旧持有者不能释放已被覆盖的槽位")

	p.Claim()
	assert.Equal(t, 2, p.Overwrites())

	p.release(slotClaim{slot: again, owner: second})
	assert.Equal(t, 1, p.InUse(), "第二次申请也已被覆盖")
}

// TestPoolOverwriteCountedAfterEarlierAnimationEnds 测试先结束的动画不会掩盖仍在运行的槽位
func TestPoolOverwriteCountedAfterEarlierAnimationEnds(t *testing.T) {
	e := NewEngine(NewPool(1), nil)
	e.Pool.Debug = true
	a, b, c := newTestSprite(), newTestSprite(), newTestSprite()

	require.NoError(t, e.LaunchSummary(a, AnimTwist))
	e.Step(a)
	require.NoError(t, e.LaunchSummary(b, AnimTwistTwice))
	e.Step(b)
	assert.Equal(t, 1, e.Pool.Overwrites())

	require.Greater(t, runUntilComplete(e, a), 0)
	assert.False(t, e.IsAnimationComplete(b))
	assert.Equal(t, 1, e.Pool.InUse(), "b 仍持有槽位")

	require.NoError(t, e.LaunchSummary(c, AnimTwist))
	e.Step(c)
	assert.Equal(t, 2, e.Pool.Overwrites())

	require.Greater(t, runUntilComplete(e, b), 0)
	require.Greater(t, runUntilComplete(e, c), 0)
	assert.Equal(t, 0, e.Pool.InUse())
}

// TestPoolDefaults 测试非法大小回退到默认值
func TestPoolDefaults(t *testing.T) {
	assert.Equal(t, DefaultPoolSize, NewPool(0).Size())
	assert.Equal(t, DefaultPoolSize, NewPool(-3).Size())
	assert.Nil(t, NewPool(2).Slot(2))
	assert.Nil(t, NewPool(2).Slot(-1))
}

// TestConcurrentSlotAnimationsShareSmallPool 测试槽位不足时动画仍能结束
func TestConcurrentSlotAnimationsShareSmallPool(t *testing.T) {
	e := NewEngine(NewPool(1), nil)
	e.Pool.Debug = true

	sprites := []*Sprite{newTestSprite(), newTestSprite(), newTestSprite()}
	for _, s := range sprites {
		require.NoError(t, e.LaunchSummary(s, AnimTwistTwice))
	}
	for i := 0; i < maxSteps; i++ {
		done := true
		for _, s := range sprites {
			e.Step(s)
			if !e.IsAnimationComplete(s) {
				done = false
			}
		}
		if done {
			break
		}
	}
	for _, s := range sprites {
		assert.True(t, e.IsAnimationComplete(s))
	}
	assert.Greater(t, e.Pool.Overwrites(), 0)
}
