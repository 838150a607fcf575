package config

import (
	"fmt"
	"log"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/decker502/monanim/pkg/embedded"
	"github.com/decker502/monanim/pkg/monanim"
)

const (
	// MonAnimsFile 物种动画表文件名
	MonAnimsFile = "mon_anims.yaml"
	// NaturesFile 性格修正表文件名
	NaturesFile = "natures.yaml"
)

// SpeciesAnimConfig 物种动画表中的一行
type SpeciesAnimConfig struct {
	Name  string `yaml:"name"`
	Front string `yaml:"front"`
	// Delay 启动前视动画前等待的帧数
	Delay int `yaml:"delay,omitempty"`
	// Back 背视动画组名，留空时回退到第一组
	Back string `yaml:"back,omitempty"`
}

// MonAnimsConfig mon_anims.yaml 的顶层结构
type MonAnimsConfig struct {
	Species []SpeciesAnimConfig `yaml:"species"`
}

// NatureConfig 性格修正表中的一行
type NatureConfig struct {
	Name     string `yaml:"name"`
	Modifier int    `yaml:"modifier"`
}

// NaturesConfig natures.yaml 的顶层结构
type NaturesConfig struct {
	Natures []NatureConfig `yaml:"natures"`
}

// SpeciesAnims 解析后的物种动画参数
type SpeciesAnims struct {
	// ID 物种编号，按表中顺序从 1 开始，0 保留
	ID    int
	Name  string
	Front monanim.AnimID
	Delay int
	// backSet 1 起的动画组编号，0 表示表中没有填写
	backSet int
}

// BackDefaulted 背视动画组是否来自默认值
func (s *SpeciesAnims) BackDefaulted() bool {
	return s.backSet == 0
}

// MonAnimConfigManager 物种动画配置管理器
type MonAnimConfigManager struct {
	species []SpeciesAnims
	byName  map[string]int
	natures monanim.NatureTable
	mu      sync.RWMutex
}

// NewMonAnimConfigManager 从资源目录加载物种动画表和性格修正表
//
// 参数：
//   - dir: 资源目录，如 "data"
//
// 返回：
//   - *MonAnimConfigManager: 配置管理器
//   - error: 读取、解析或校验失败
func NewMonAnimConfigManager(dir string) (*MonAnimConfigManager, error) {
	animsData, err := embedded.ReadFile(path.Join(dir, MonAnimsFile))
	if err != nil {
		return nil, fmt.Errorf("无法读取物种动画表: %w", err)
	}
	naturesData, err := embedded.ReadFile(path.Join(dir, NaturesFile))
	if err != nil {
		return nil, fmt.Errorf("无法读取性格修正表: %w", err)
	}
	return ParseMonAnimConfig(animsData, naturesData)
}

// ParseMonAnimConfig 解析两份 YAML 并建立索引
func ParseMonAnimConfig(animsData, naturesData []byte) (*MonAnimConfigManager, error) {
	var anims MonAnimsConfig
	if err := yaml.Unmarshal(animsData, &anims); err != nil {
		return nil, fmt.Errorf("无法解析物种动画表: %w", err)
	}
	var natures NaturesConfig
	if err := yaml.Unmarshal(naturesData, &natures); err != nil {
		return nil, fmt.Errorf("无法解析性格修正表: %w", err)
	}

	m := &MonAnimConfigManager{
		species: make([]SpeciesAnims, 0, len(anims.Species)),
		byName:  make(map[string]int, len(anims.Species)),
	}

	defaulted := 0
	for i, entry := range anims.Species {
		sp, err := parseSpecies(i+1, entry)
		if err != nil {
			return nil, err
		}
		if _, exists := m.byName[sp.Name]; exists {
			return nil, fmt.Errorf("重复的物种名: %s", sp.Name)
		}
		if sp.BackDefaulted() {
			defaulted++
		}
		m.byName[sp.Name] = sp.ID
		m.species = append(m.species, sp)
	}

	table, err := parseNatures(natures)
	if err != nil {
		return nil, err
	}
	m.natures = table

	log.Printf("[MonAnimConfig] Loaded %d species (%d without back set), %d natures",
		len(m.species), defaulted, len(natures.Natures))
	return m, nil
}

func parseSpecies(id int, entry SpeciesAnimConfig) (SpeciesAnims, error) {
	if entry.Name == "" {
		return SpeciesAnims{}, fmt.Errorf("物种 #%d 缺少 'name' 字段", id)
	}
	front, err := monanim.ParseAnimID(entry.Front)
	if err != nil {
		return SpeciesAnims{}, fmt.Errorf("物种 %s 的前视动画: %w", entry.Name, err)
	}
	if entry.Delay < 0 {
		return SpeciesAnims{}, fmt.Errorf("物种 %s 的延迟 %d 不能为负", entry.Name, entry.Delay)
	}

	sp := SpeciesAnims{ID: id, Name: entry.Name, Front: front, Delay: entry.Delay}
	if entry.Back != "" {
		set, err := monanim.ParseBackAnimSet(entry.Back)
		if err != nil {
			return SpeciesAnims{}, fmt.Errorf("物种 %s 的背视动画组: %w", entry.Name, err)
		}
		sp.backSet = int(set) + 1
	}
	return sp, nil
}

func parseNatures(cfg NaturesConfig) (monanim.NatureTable, error) {
	var table monanim.NatureTable
	seen := make(map[monanim.Nature]bool, monanim.NatureCount)
	for _, entry := range cfg.Natures {
		n, err := monanim.ParseNature(entry.Name)
		if err != nil {
			return table, fmt.Errorf("性格修正表: %w", err)
		}
		if entry.Modifier < 0 || entry.Modifier >= monanim.BackAnimVariants {
			return table, fmt.Errorf("性格 %s 的修正值 %d 超出范围", n, entry.Modifier)
		}
		table[n] = entry.Modifier
		seen[n] = true
	}
	if len(seen) != int(monanim.NatureCount) {
		return table, fmt.Errorf("性格修正表只有 %d 项，需要 %d 项", len(seen), monanim.NatureCount)
	}
	return table, nil
}

// lookup 按物种编号取配置
func (m *MonAnimConfigManager) lookup(species int) (*SpeciesAnims, error) {
	if species < 1 || species > len(m.species) {
		return nil, fmt.Errorf("物种编号 %d 不存在", species)
	}
	return &m.species[species-1], nil
}

// FrontAnim 物种的前视动画
func (m *MonAnimConfigManager) FrontAnim(species int) (monanim.AnimID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sp, err := m.lookup(species)
	if err != nil {
		return monanim.AnimNone, err
	}
	return sp.Front, nil
}

// FrontDelay 物种前视动画的启动延迟，未知物种返回 0
func (m *MonAnimConfigManager) FrontDelay(species int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sp, err := m.lookup(species)
	if err != nil {
		return 0
	}
	return sp.Delay
}

// BackAnimSet 物种的背视动画组
//
// 表中没有填写的物种使用第一组（水平抖动）。
//
// 参数：
//   - species: 物种编号
//
// 返回：
//   - monanim.BackAnimSet: 动画组
//   - error: 物种编号不存在
func (m *MonAnimConfigManager) BackAnimSet(species int) (monanim.BackAnimSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sp, err := m.lookup(species)
	if err != nil {
		return 0, err
	}
	if sp.backSet == 0 {
		return 0, nil
	}
	return monanim.BackAnimSet(sp.backSet - 1), nil
}

// SpeciesByName 按名称查找物种
func (m *MonAnimConfigManager) SpeciesByName(name string) (SpeciesAnims, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byName[name]
	if !ok {
		return SpeciesAnims{}, false
	}
	return m.species[id-1], true
}

// Species 返回全部物种配置的副本
func (m *MonAnimConfigManager) Species() []SpeciesAnims {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SpeciesAnims, len(m.species))
	copy(out, m.species)
	return out
}

// NatureTable 返回性格修正表
func (m *MonAnimConfigManager) NatureTable() monanim.NatureTable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.natures
}

// NatureModifier 查询性格的修正值
func (m *MonAnimConfigManager) NatureModifier(n monanim.Nature) (int, error) {
	return m.NatureTable().Modifier(n)
}
