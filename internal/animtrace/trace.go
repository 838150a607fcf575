// Package animtrace 记录变换动画逐帧的精灵状态并检查结束后的复位
//
// 每次记录使用独立的引擎、调色板和精灵，互不影响。
// cmd/anim_trace 用它画曲线，cmd/verify_anim_catalog 用它批量检查目录。
package animtrace

import (
	"fmt"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/monanim"
	"github.com/decker502/monanim/pkg/utils"
)

const (
	// DefaultMaxFrames 超过这个帧数仍未结束视为不终止
	DefaultMaxFrames = 5000
	// tracePaletteNum 记录用精灵的调色板号
	tracePaletteNum = 3
)

// tracePalette 记录用的原始颜色，检查调色动画是否恢复
var tracePalette = []palette.Color{
	palette.RGB(31, 26, 6), palette.RGB(6, 6, 6), palette.RGB(24, 6, 5), palette.White,
	palette.RGB(10, 20, 30), palette.RGB(3, 9, 27), palette.RGB(17, 17, 17), palette.RGB(29, 12, 2),
}

// Options 记录参数
type Options struct {
	// Mirrored 精灵镜像（图鉴中朝右的精灵）
	Mirrored bool
	// Summary 以图鉴模式播放；否则以战斗任务播放
	Summary bool
	// FrameAnimFrames 模拟宿主的帧动画长度，0 表示没有帧动画
	FrameAnimFrames int
	// MaxFrames 最多记录的帧数，0 使用 DefaultMaxFrames
	MaxFrames int
}

// Sample 一帧结束时的精灵状态
type Sample struct {
	Frame     int
	X         int16
	Y         int16
	XScale    int16
	YScale    int16
	Rotation  uint16
	Invisible bool
	Affine    bool
	// Faded 调色板首色的显示值
	Faded palette.Color
}

// Trace 一次完整播放的记录
type Trace struct {
	ID      monanim.AnimID
	Options Options
	Samples []Sample

	// FinishFrame 变换结束（不再每帧推进）的帧号，-1 表示未结束
	FinishFrame int
	// CompleteFrame 进入终止状态的帧号，-1 表示未终止
	CompleteFrame int

	final          *monanim.Sprite
	slotsInUse     int
	paletteIntact  bool
	mirrorRestored bool
}

// Record 播放一个动画直到终止并记录每一帧
//
// 参数：
//   - id: 动画编号
//   - opts: 播放参数
//
// 返回：
//   - *Trace: 记录结果
//   - error: 编号非法
func Record(id monanim.AnimID, opts Options) (*Trace, error) {
	if !id.Valid() {
		return nil, &monanim.InvalidAnimationIDError{ID: id}
	}
	maxFrames := opts.MaxFrames
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}

	buf := palette.NewBuffer()
	if err := buf.LoadObjectPalette(tracePaletteNum, tracePalette); err != nil {
		return nil, err
	}
	engine := monanim.NewEngine(nil, buf)

	sprite := monanim.NewSprite(64, 64)
	sprite.PaletteNum = tracePaletteNum
	sprite.Mirrored = opts.Mirrored
	if opts.FrameAnimFrames > 0 {
		sprite.FrameAnimEnded = false
	}

	var task *monanim.Task
	var err error
	if opts.Summary {
		err = engine.LaunchSummary(sprite, id)
	} else {
		task, err = engine.LaunchFront(sprite, id)
	}
	if err != nil {
		return nil, fmt.Errorf("启动 %s 失败: %w", id, err)
	}

	t := &Trace{
		ID:            id,
		Options:       opts,
		Samples:       make([]Sample, 0, 128),
		FinishFrame:   -1,
		CompleteFrame: -1,
	}
	offset := palette.ObjectPaletteOffset(tracePaletteNum)

	for frame := 1; frame <= maxFrames; frame++ {
		if opts.FrameAnimFrames > 0 && frame > opts.FrameAnimFrames {
			sprite.FrameAnimEnded = true
		}
		engine.Step(sprite)
		done := engine.IsAnimationComplete(sprite)
		if task != nil {
			done = task.Update()
		}

		t.Samples = append(t.Samples, Sample{
			Frame:     frame,
			X:         sprite.X2,
			Y:         sprite.Y2,
			XScale:    sprite.Affine.XScale,
			YScale:    sprite.Affine.YScale,
			Rotation:  sprite.Affine.Rotation,
			Invisible: sprite.Invisible,
			Affine:    sprite.AffineEnabled(),
			Faded:     buf.Faded[offset],
		})
		if t.FinishFrame < 0 && sprite.Finished() {
			t.FinishFrame = frame
		}
		if done {
			t.CompleteFrame = frame
			break
		}
	}

	t.final = sprite
	t.slotsInUse = engine.Pool.InUse()
	t.paletteIntact = buf.Faded == buf.Unfaded
	t.mirrorRestored = sprite.Mirrored == opts.Mirrored
	return t, nil
}

// Range 返回某个通道在整个记录中的最小值和最大值
func (t *Trace) Range(ch Channel) (int, int) {
	if len(t.Samples) == 0 {
		return 0, 0
	}
	lo, hi := ch.Value(t.Samples[0]), ch.Value(t.Samples[0])
	for _, s := range t.Samples[1:] {
		v := ch.Value(s)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Violations 检查动画结束后精灵是否回到中性状态
//
// 返回：
//   - []string: 每条违规的描述，为空表示通过
func (t *Trace) Violations() []string {
	var out []string
	if t.CompleteFrame < 0 {
		return append(out, fmt.Sprintf("%d 帧内未进入终止状态", len(t.Samples)))
	}

	s := t.final
	if s.X2 != 0 || s.Y2 != 0 {
		out = append(out, fmt.Sprintf("偏移未归零: (%d, %d)", s.X2, s.Y2))
	}
	if s.Invisible {
		out = append(out, "精灵仍然隐藏")
	}
	if s.Affine.Rotation != 0 || s.Affine.YScale != utils.AffineIdentityScale {
		out = append(out, fmt.Sprintf("仿射未复位: %+v", s.Affine))
	}
	// 镜像精灵的图鉴动画用过仿射时，以 -256 保持朝向
	flipped := t.Options.Summary && t.Options.Mirrored && s.Affine.XScale == -utils.AffineIdentityScale
	if s.Affine.XScale != utils.AffineIdentityScale && !flipped {
		out = append(out, fmt.Sprintf("水平缩放 %d，期望 %d", s.Affine.XScale, utils.AffineIdentityScale))
	}
	if t.Options.Summary && s.AffineEnabled() {
		out = append(out, "图鉴模式结束后仍启用仿射")
	}
	if t.slotsInUse != 0 {
		out = append(out, fmt.Sprintf("%d 个上下文槽未释放", t.slotsInUse))
	}
	if !t.paletteIntact {
		out = append(out, "调色板未恢复")
	}
	if !t.mirrorRestored {
		out = append(out, "镜像设置未恢复")
	}
	return out
}

// Channel 可绘制的精灵状态通道
type Channel int

const (
	ChannelX Channel = iota
	ChannelY
	ChannelXScale
	ChannelYScale
	ChannelRotation
	ChannelCount
)

var channelNames = [ChannelCount]string{"x", "y", "xscale", "yscale", "rotation"}

// String 实现 fmt.Stringer
func (c Channel) String() string {
	if c < 0 || c >= ChannelCount {
		return fmt.Sprintf("channel(%d)", int(c))
	}
	return channelNames[c]
}

// Value 从采样中取出通道值
func (c Channel) Value(s Sample) int {
	switch c {
	case ChannelX:
		return int(s.X)
	case ChannelY:
		return int(s.Y)
	case ChannelXScale:
		return int(s.XScale)
	case ChannelYScale:
		return int(s.YScale)
	case ChannelRotation:
		// 以带符号的形式显示，逆时针旋转为负
		return int(int16(s.Rotation))
	}
	return 0
}
