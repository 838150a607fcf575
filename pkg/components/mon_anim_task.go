package components

import "github.com/decker502/monanim/pkg/monanim"

// MonAnimTaskComponent 托管中的战斗动画任务
// 任务结束后由 MonAnimSystem 移除
type MonAnimTaskComponent struct {
	Task *monanim.Task
	// Label 日志中显示的来源，如 "front" 或 "back"
	Label string
}
