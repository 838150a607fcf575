package monanim

import (
	"fmt"
	"strings"
)

// Nature 宝可梦性格
type Nature int

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
	// NatureCount 性格总数
	NatureCount
)

var natureNames = [NatureCount]string{
	"hardy", "lonely", "brave", "adamant", "naughty",
	"bold", "docile", "relaxed", "impish", "lax",
	"timid", "hasty", "serious", "jolly", "naive",
	"modest", "mild", "quiet", "bashful", "rash",
	"calm", "gentle", "sassy", "careful", "quirky",
}

// Valid 判断性格编号是否已定义
func (n Nature) Valid() bool {
	return n >= 0 && n < NatureCount
}

func (n Nature) String() string {
	if !n.Valid() {
		return fmt.Sprintf("nature(%d)", int(n))
	}
	return natureNames[n]
}

// ParseNature 按名称查找性格，大小写不敏感
func ParseNature(name string) (Nature, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range natureNames {
		if n == key {
			return Nature(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNature, name)
}

// NatureTable 性格到背视动画修正值的映射
type NatureTable [NatureCount]int

// DefaultNatureTable 内置的性格修正表
var DefaultNatureTable = NatureTable{
	0, 2, 0, 0, 0,
	1, 1, 1, 0, 1,
	2, 0, 1, 0, 0,
	2, 2, 2, 2, 1,
	1, 2, 1, 2, 1,
}

// Modifier 查询性格的修正值
//
// 参数：
//   - n: 性格
//
// 返回：
//   - int: 0、1 或 2
//   - error: 性格未定义或表中的值越界
func (t NatureTable) Modifier(n Nature) (int, error) {
	if !n.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNature, int(n))
	}
	m := t[n]
	if m < 0 || m >= BackAnimVariants {
		return 0, fmt.Errorf("nature %s has modifier %d out of range", n, m)
	}
	return m, nil
}

// NatureModifier 用内置表查询性格修正值
func NatureModifier(n Nature) (int, error) {
	return DefaultNatureTable.Modifier(n)
}
