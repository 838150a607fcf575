package monanim

import "log"

// DefaultPoolSize 默认上下文槽数量
const DefaultPoolSize = 4

// ContextSlot 需要跨帧保存参数的动画使用的上下文槽
//
// 槽位被重新申请时会被清零，仍在使用它的动画会读到新值。
// 同时运行的这类动画数量超过槽位数时即出现这种覆盖。
type ContextSlot struct {
	Delay    int
	Speed    int
	Runs     int
	Rotation int
	Data     int

	live bool
	// owner 最近一次申请的序号，只有持有同一序号的动画能归还槽位
	owner uint64
}

func (c *ContextSlot) reset() {
	*c = ContextSlot{Runs: 1, live: true}
}

// Pool 固定大小的上下文槽环形池
type Pool struct {
	slots  []ContextSlot
	cursor int

	// Debug 打开后记录被覆盖的槽位
	Debug      bool
	overwrites int
	claims     uint64
}

// NewPool 创建上下文槽池
//
// 参数：
//   - size: 槽位数量，小于 1 时使用 DefaultPoolSize
//
// 返回：
//   - *Pool: 游标在 0 的池，第一次 Claim 返回下标 1
func NewPool(size int) *Pool {
	if size < 1 {
		size = DefaultPoolSize
	}
	return &Pool{slots: make([]ContextSlot, size)}
}

// Size 槽位数量
func (p *Pool) Size() int {
	return len(p.slots)
}

// Claim 申请下一个槽位
//
// 游标先前移再返回，槽位重置为 Runs=1、其余字段为 0。
//
// 返回：
//   - int: 槽位下标
//   - *ContextSlot: 槽位（指向池内存储）
func (p *Pool) Claim() (int, *ContextSlot) {
	index, slot, _ := p.claim()
	return index, slot
}

func (p *Pool) claim() (int, *ContextSlot, uint64) {
	p.cursor = (p.cursor + 1) % len(p.slots)
	slot := &p.slots[p.cursor]
	if slot.live && p.Debug {
		p.overwrites++
		log.Printf("[MonAnimPool] Warning: slot %d reclaimed while still in use (overwrites=%d)", p.cursor, p.overwrites)
	}
	slot.reset()
	p.claims++
	slot.owner = p.claims
	return p.cursor, slot, p.claims
}

// Slot 按下标访问槽位，越界时返回 nil
func (p *Pool) Slot(index int) *ContextSlot {
	if index < 0 || index >= len(p.slots) {
		return nil
	}
	return &p.slots[index]
}

// Cursor 最近一次申请的槽位下标
func (p *Pool) Cursor() int {
	return p.cursor
}

// Overwrites 调试模式下累计的覆盖次数
func (p *Pool) Overwrites() int {
	return p.overwrites
}

// InUse 当前仍被动画持有的槽位数量
func (p *Pool) InUse() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].live {
			n++
		}
	}
	return n
}

// release 归还槽位；槽位已被后来的申请覆盖时保持占用
func (p *Pool) release(c slotClaim) {
	if c.slot.owner == c.owner {
		c.slot.live = false
	}
}

// slotClaim 动画持有的一次槽位申请
type slotClaim struct {
	slot  *ContextSlot
	owner uint64
}
