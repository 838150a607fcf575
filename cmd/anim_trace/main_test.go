package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/monanim/internal/animtrace"
	"github.com/decker502/monanim/pkg/monanim"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("初始化模拟终端失败: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 30)
	return NewViewer(screen, monanim.PublicIDs(), monanim.AnimTwistTwice, animtrace.Options{Summary: true})
}

// TestViewerStartsAtRequestedAnim 测试初始选中项
func TestViewerStartsAtRequestedAnim(t *testing.T) {
	v := newTestViewer(t)
	if v.ids[v.index] != monanim.AnimTwistTwice {
		t.Errorf("初始动画 = %s, 期望 twist_twice", v.ids[v.index])
	}
	if v.trace == nil || v.err != nil {
		t.Fatalf("初始记录失败: %v", v.err)
	}
	v.draw()
}

// TestViewerKeys 测试按键
func TestViewerKeys(t *testing.T) {
	v := newTestViewer(t)
	start := v.index

	tests := []struct {
		name  string
		event tcell.Event
		check func() bool
	}{
		{"下一个", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), func() bool { return v.index == start+1 }},
		{"上一个", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), func() bool { return v.index == start }},
		{"镜像", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), func() bool { return v.trace.Options.Mirrored }},
		{"战斗模式", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), func() bool { return !v.trace.Options.Summary }},
		{"切换通道", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), func() bool { return v.channel == animtrace.ChannelY }},
		{"数字选通道", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), func() bool { return v.channel == animtrace.ChannelRotation }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !v.handleInput(tt.event) {
				t.Fatal("不应退出")
			}
			if !tt.check() {
				t.Error("状态不符合预期")
			}
			v.draw()
		})
	}

	if v.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q 应该退出")
	}
}

// TestViewerWrapsAround 测试列表首尾循环
func TestViewerWrapsAround(t *testing.T) {
	v := newTestViewer(t)
	v.index = 0
	v.move(-1)
	if v.index != len(v.ids)-1 {
		t.Errorf("index = %d, 期望 %d", v.index, len(v.ids)-1)
	}
}
