// cmd/anim_trace/main.go
// 终端曲线查看器：逐帧绘制变换动画的偏移、缩放和旋转
//
// 用法：
//   go run ./cmd/anim_trace                       # 交互模式
//   go run ./cmd/anim_trace --anim=twist_twice --csv   # 输出 CSV 后退出

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/monanim/internal/animtrace"
	"github.com/decker502/monanim/pkg/monanim"
)

var (
	animName   = flag.String("anim", "h_slide", "初始动画名")
	mirrored   = flag.Bool("mirrored", false, "镜像精灵")
	summary    = flag.Bool("summary", true, "图鉴模式播放（false 为战斗任务）")
	frameAnim  = flag.Int("frame-anim", 0, "模拟帧动画长度（帧）")
	csvOutput  = flag.Bool("csv", false, "输出 CSV 而不是打开终端界面")
	showUnused = flag.Bool("unused", false, "列表包含没有物种使用的动画")
)

// Viewer 终端界面状态
type Viewer struct {
	screen tcell.Screen
	ids    []monanim.AnimID
	index  int
	opts   animtrace.Options
	trace  *animtrace.Trace
	// channel 当前绘制的通道
	channel animtrace.Channel
	err     error
}

// NewViewer 创建查看器并记录初始动画
func NewViewer(screen tcell.Screen, ids []monanim.AnimID, start monanim.AnimID, opts animtrace.Options) *Viewer {
	v := &Viewer{screen: screen, ids: ids, opts: opts}
	for i, id := range ids {
		if id == start {
			v.index = i
		}
	}
	v.record()
	return v
}

func (v *Viewer) record() {
	v.trace, v.err = animtrace.Record(v.ids[v.index], v.opts)
}

func (v *Viewer) move(delta int) {
	v.index = (v.index + delta + len(v.ids)) % len(v.ids)
	v.record()
}

// handleInput 处理按键，返回 false 表示退出
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			v.move(1)
		case tcell.KeyUp:
			v.move(-1)
		case tcell.KeyPgDn:
			v.move(10)
		case tcell.KeyPgUp:
			v.move(-10)
		case tcell.KeyTab:
			v.channel = (v.channel + 1) % animtrace.ChannelCount
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				v.move(1)
			case 'k':
				v.move(-1)
			case 'm':
				v.opts.Mirrored = !v.opts.Mirrored
				v.record()
			case 's':
				v.opts.Summary = !v.opts.Summary
				v.record()
			case '1', '2', '3', '4', '5':
				v.channel = animtrace.Channel(ev.Rune() - '1')
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAxis    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleCurve   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleWaiting = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSelect  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

const listWidth = 28

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	v.drawList(height)
	v.drawPlot(listWidth+1, 0, width-listWidth-1, height)
	v.screen.Show()
}

// drawList 左侧动画列表，选中项保持在中间
func (v *Viewer) drawList(height int) {
	top := v.index - height/2
	if top < 0 {
		top = 0
	}
	for row := 0; row < height && top+row < len(v.ids); row++ {
		i := top + row
		style := styleText
		if i == v.index {
			style = styleSelect
		}
		info, _ := monanim.Info(v.ids[i])
		label := fmt.Sprintf("%3d %s", info.ID, info.Name)
		if info.Unused {
			label += "*"
		}
		putString(v.screen, 0, row, listWidth, label, style)
	}
}

// drawPlot 右侧曲线，帧数多于列数时每列画出该区间的最小到最大值
func (v *Viewer) drawPlot(x0, y0, width, height int) {
	if v.err != nil {
		putString(v.screen, x0, y0, width, v.err.Error(), styleError)
		return
	}
	t := v.trace
	info, _ := monanim.Info(t.ID)
	mode := "battle"
	if t.Options.Summary {
		mode = "summary"
	}
	header := fmt.Sprintf("%s | %s mirrored=%v | finish %d complete %d | [%d] %s",
		info, mode, t.Options.Mirrored, t.FinishFrame, t.CompleteFrame, int(v.channel)+1, v.channel)
	putString(v.screen, x0, y0, width, header, styleText)

	violations := t.Violations()
	status := "neutral reset ok"
	statusStyle := styleDim
	if len(violations) > 0 {
		status = fmt.Sprintf("%d violation(s): %s", len(violations), violations[0])
		statusStyle = styleError
	}
	putString(v.screen, x0, y0+1, width, status, statusStyle)

	plotTop := y0 + 3
	plotHeight := height - plotTop - 3
	labelWidth := 7
	plotLeft := x0 + labelWidth
	plotWidth := width - labelWidth
	if plotHeight < 3 || plotWidth < 2 || len(t.Samples) == 0 {
		return
	}

	lo, hi := t.Range(v.channel)
	if lo == hi {
		lo--
		hi++
	}
	rowOf := func(value int) int {
		return plotTop + (hi-value)*(plotHeight-1)/(hi-lo)
	}

	putString(v.screen, x0, plotTop, labelWidth, fmt.Sprintf("%6d", hi), styleDim)
	putString(v.screen, x0, plotTop+plotHeight-1, labelWidth, fmt.Sprintf("%6d", lo), styleDim)
	if lo < 0 && hi > 0 {
		zero := rowOf(0)
		putString(v.screen, x0, zero, labelWidth, fmt.Sprintf("%6d", 0), styleDim)
		for col := 0; col < plotWidth; col++ {
			v.screen.SetContent(plotLeft+col, zero, '·', nil, styleAxis)
		}
	}

	framesPerCol := (len(t.Samples) + plotWidth - 1) / plotWidth
	stripRow := plotTop + plotHeight
	for col := 0; col*framesPerCol < len(t.Samples); col++ {
		start := col * framesPerCol
		end := start + framesPerCol
		if end > len(t.Samples) {
			end = len(t.Samples)
		}
		bucket := t.Samples[start:end]

		colLo, colHi := v.channel.Value(bucket[0]), v.channel.Value(bucket[0])
		hidden := false
		for _, s := range bucket {
			value := v.channel.Value(s)
			if value < colLo {
				colLo = value
			}
			if value > colHi {
				colHi = value
			}
			hidden = hidden || s.Invisible
		}

		style := styleCurve
		if t.FinishFrame > 0 && bucket[0].Frame > t.FinishFrame {
			style = styleWaiting
		}
		for row := rowOf(colHi); row <= rowOf(colLo); row++ {
			v.screen.SetContent(plotLeft+col, row, '█', nil, style)
		}
		if hidden {
			v.screen.SetContent(plotLeft+col, stripRow, '▀', nil, styleHidden)
		}
	}

	footer := fmt.Sprintf("%d frames, %d per column | ↑↓/jk select  tab/1-5 channel  m mirror  s mode  q quit",
		len(t.Samples), framesPerCol)
	putString(v.screen, x0, height-1, width, footer, styleDim)
}

// putString 在一行内写入字符串，超出宽度的部分截断
func putString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		if col >= width {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}

func (v *Viewer) run() {
	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.handleInput(ev) {
			return
		}
		v.draw()
	}
}

// writeCSV 输出一次记录的全部采样
func writeCSV(t *animtrace.Trace) {
	fmt.Println("frame,x,y,xscale,yscale,rotation,invisible,affine")
	for _, s := range t.Samples {
		fmt.Printf("%d,%d,%d,%d,%d,%d,%v,%v\n",
			s.Frame, s.X, s.Y, s.XScale, s.YScale, s.Rotation, s.Invisible, s.Affine)
	}
}

func main() {
	flag.Parse()

	start, err := monanim.ParseAnimID(*animName)
	if err != nil {
		log.Fatalf("[AnimTrace] %v", err)
	}
	opts := animtrace.Options{
		Mirrored:        *mirrored,
		Summary:         *summary,
		FrameAnimFrames: *frameAnim,
	}

	if *csvOutput {
		t, err := animtrace.Record(start, opts)
		if err != nil {
			log.Fatalf("[AnimTrace] %v", err)
		}
		writeCSV(t)
		return
	}

	ids := monanim.PublicIDs()
	if *showUnused {
		ids = ids[:0:0]
		for _, info := range monanim.Catalog() {
			ids = append(ids, info.ID)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewViewer(screen, ids, start, opts).run()
}
