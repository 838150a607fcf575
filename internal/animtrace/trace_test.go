package animtrace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/monanim/pkg/monanim"
	"github.com/decker502/monanim/pkg/utils"
)

func TestRecordHorizontalSlide(t *testing.T) {
	tr, err := Record(monanim.AnimHorizontalSlide, Options{Summary: true})
	require.NoError(t, err)

	assert.Equal(t, 42, tr.FinishFrame)
	assert.Equal(t, 43, tr.CompleteFrame)
	require.Len(t, tr.Samples, 43)

	// 第 n 帧记录的是 tick n-1 的偏移
	for tick := 0; tick <= 40; tick++ {
		want := utils.Sin((tick*384/40)%256, 6)
		assert.Equal(t, want, int(tr.Samples[tick].X), "tick %d", tick)
	}
	lo, hi := tr.Range(ChannelX)
	assert.Less(t, lo, 0)
	assert.Greater(t, hi, 0)
	assert.Empty(t, tr.Violations())
}

func TestRecordMirroredSlideIsNegated(t *testing.T) {
	plain, err := Record(monanim.AnimHorizontalSlide, Options{Summary: true})
	require.NoError(t, err)
	mirrored, err := Record(monanim.AnimHorizontalSlide, Options{Summary: true, Mirrored: true})
	require.NoError(t, err)

	require.Equal(t, len(plain.Samples), len(mirrored.Samples))
	for i := range plain.Samples {
		assert.Equal(t, -plain.Samples[i].X, mirrored.Samples[i].X, "frame %d", i+1)
	}
}

func TestRecordWaitsForFrameAnimation(t *testing.T) {
	tr, err := Record(monanim.AnimHorizontalSlide, Options{Summary: true, FrameAnimFrames: 100})
	require.NoError(t, err)

	assert.Equal(t, 42, tr.FinishFrame)
	assert.Equal(t, 101, tr.CompleteFrame)
	assert.Empty(t, tr.Violations())
}

func TestRecordMaxFrames(t *testing.T) {
	tr, err := Record(monanim.AnimHorizontalSlide, Options{Summary: true, MaxFrames: 10})
	require.NoError(t, err)

	assert.Equal(t, -1, tr.CompleteFrame)
	assert.Len(t, tr.Samples, 10)
	assert.Len(t, tr.Violations(), 1)
}

func TestRecordInvalidID(t *testing.T) {
	_, err := Record(monanim.AnimCount, Options{})
	assert.True(t, errors.Is(err, monanim.ErrInvalidAnimationID))
}

func TestEveryAnimationResetsCleanly(t *testing.T) {
	modes := []Options{
		{},
		{Mirrored: true},
		{Summary: true},
		{Summary: true, Mirrored: true},
	}
	for _, info := range monanim.Catalog() {
		for _, opts := range modes {
			tr, err := Record(info.ID, opts)
			require.NoError(t, err)
			assert.Empty(t, tr.Violations(), "%s %+v", info.Name, opts)
		}
	}
}

func TestChannelValues(t *testing.T) {
	s := Sample{X: -3, Y: 4, XScale: 300, YScale: 200, Rotation: 0xF000}
	assert.Equal(t, -3, ChannelX.Value(s))
	assert.Equal(t, 4, ChannelY.Value(s))
	assert.Equal(t, 300, ChannelXScale.Value(s))
	assert.Equal(t, 200, ChannelYScale.Value(s))
	assert.Equal(t, -0x1000, ChannelRotation.Value(s))

	assert.Equal(t, "rotation", ChannelRotation.String())
	assert.Equal(t, "channel(9)", Channel(9).String())
}
