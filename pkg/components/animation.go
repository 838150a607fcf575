package components

// AnimationComponent 精灵自身的帧动画
//
// 以游戏帧为单位计时。变换动画结束后需要等帧动画播完，
// 所以非循环动画播完时 AnimationSystem 会通知精灵。
type AnimationComponent struct {
	FrameCount    int  // 帧数
	TicksPerFrame int  // 每帧持续的游戏帧数
	Counter       int  // 当前帧已持续的游戏帧数
	CurrentFrame  int  // 当前帧索引(0-based)
	IsLooping     bool // 是否循环播放
	IsFinished    bool // 是否已播完(仅对非循环动画有效)
}

// Restart 从第一帧重新播放
func (a *AnimationComponent) Restart() {
	a.Counter = 0
	a.CurrentFrame = 0
	a.IsFinished = false
}
