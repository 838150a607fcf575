package game

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/entities"
	"github.com/decker502/monanim/pkg/monanim"
	"github.com/decker502/monanim/pkg/systems"
)

// 战斗位置
const (
	PlayerBattler   = 0
	OpponentBattler = 1
)

// 屏幕尺寸（战斗画面 240x160 放大 3 倍）
const (
	BattleScreenWidth  = 720
	BattleScreenHeight = 480
)

// BattleSceneOptions 战斗场景初始参数
type BattleSceneOptions struct {
	// Player, Opponent 物种名，留空时使用表中第一个物种
	Player   string
	Opponent string
	// PlayerNature 我方宝可梦的性格，决定背视动画变体
	PlayerNature monanim.Nature
}

// BattleScene 演示战斗画面：对方播放前视动画，我方播放背视动画
//
// 同时实现 ebiten.Game 和 monanim.NatureLookup。
type BattleScene struct {
	species  *config.MonAnimConfigManager
	settings *SettingsManager
	all      []config.SpeciesAnims

	entityManager *ecs.EntityManager
	engine        *monanim.Engine
	palettes      *palette.Buffer
	animSystem    *systems.MonAnimSystem
	renderSystem  *systems.MonRenderSystem

	player      ecs.EntityID
	opponent    ecs.EntityID
	playerIdx   int
	opponentIdx int
	natures     map[int]monanim.Nature
	lastErr     error
}

// NewBattleScene 创建战斗场景
//
// 参数：
//   - species: 物种动画表
//   - settings: 查看器设置，可为 nil
//   - opts: 初始物种和性格
//
// 返回：
//   - *BattleScene: 场景
//   - error: 物种名不存在或表为空
func NewBattleScene(species *config.MonAnimConfigManager, settings *SettingsManager, opts BattleSceneOptions) (*BattleScene, error) {
	all := species.Species()
	if len(all) == 0 {
		return nil, fmt.Errorf("species table is empty")
	}
	if settings == nil {
		settings = NewSettingsManager(nil)
	}

	palettes := palette.NewBuffer()
	engine := monanim.NewEngine(nil, palettes)
	engine.NatureMods = species.NatureTable()
	engine.Strict = settings.GetSettings().Strict

	em := ecs.NewEntityManager()
	b := &BattleScene{
		species:       species,
		settings:      settings,
		all:           all,
		entityManager: em,
		engine:        engine,
		palettes:      palettes,
		animSystem:    systems.NewMonAnimSystem(em, engine, palettes, species),
		renderSystem:  systems.NewMonRenderSystem(em, palettes),
		natures:       map[int]monanim.Nature{PlayerBattler: opts.PlayerNature},
	}
	engine.Natures = b

	var err error
	if b.playerIdx, err = b.indexOf(opts.Player); err != nil {
		return nil, err
	}
	if b.opponentIdx, err = b.indexOf(opts.Opponent); err != nil {
		return nil, err
	}
	b.player = b.spawn(PlayerBattler, b.all[b.playerIdx])
	b.opponent = b.spawn(OpponentBattler, b.all[b.opponentIdx])

	log.Printf("[BattleScene] %s (%s) vs %s", b.all[b.playerIdx].Name, opts.PlayerNature, b.all[b.opponentIdx].Name)
	return b, nil
}

func (b *BattleScene) indexOf(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	sp, ok := b.species.SpeciesByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown species: %s", name)
	}
	return sp.ID - 1, nil
}

// spawn 在战斗位置创建精灵实体
func (b *BattleScene) spawn(battler int, sp config.SpeciesAnims) ecs.EntityID {
	x, y := 540.0, 150.0
	isBack := battler == PlayerBattler
	if isBack {
		x, y = 180.0, 330.0
	}
	return entities.NewMonSpriteEntity(b.entityManager, sp, entities.MonSpriteOptions{
		X:          x,
		Y:          y,
		IsBack:     isBack,
		BattlerID:  battler,
		PaletteNum: battler,
		Colors:     SpeciesColors(sp.Name),
	})
}

// SpeciesColors 由物种名生成一组稳定的占位颜色
func SpeciesColors(name string) []palette.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return []palette.Color{
		palette.FromColorful(colorful.Hsv(hue, 0.55, 0.95)),
		palette.FromColorful(colorful.Hsv(hue, 0.8, 0.35)),
	}
}

// NatureOf 实现 monanim.NatureLookup
func (b *BattleScene) NatureOf(battlerID int) (monanim.Nature, error) {
	n, ok := b.natures[battlerID]
	if !ok {
		return 0, fmt.Errorf("no mon at battler %d", battlerID)
	}
	return n, nil
}

// PlayOpponentFront 对方宝可梦登场动画
func (b *BattleScene) PlayOpponentFront() error {
	b.lastErr = b.animSystem.PlayFront(b.opponent)
	return b.lastErr
}

// PlayPlayerBack 我方宝可梦登场动画
func (b *BattleScene) PlayPlayerBack() error {
	b.lastErr = b.animSystem.PlayBack(b.player)
	return b.lastErr
}

// CyclePlayer 切换我方物种
func (b *BattleScene) CyclePlayer(delta int) {
	b.playerIdx = b.cycle(b.playerIdx, delta)
	b.player = b.replace(b.player, PlayerBattler, b.all[b.playerIdx])
}

// CycleOpponent 切换对方物种
func (b *BattleScene) CycleOpponent(delta int) {
	b.opponentIdx = b.cycle(b.opponentIdx, delta)
	b.opponent = b.replace(b.opponent, OpponentBattler, b.all[b.opponentIdx])
}

// CycleNature 切换我方性格
func (b *BattleScene) CycleNature(delta int) {
	n := int(b.natures[PlayerBattler]) + delta
	count := int(monanim.NatureCount)
	b.natures[PlayerBattler] = monanim.Nature((n%count + count) % count)
}

func (b *BattleScene) cycle(index, delta int) int {
	return ((index+delta)%len(b.all) + len(b.all)) % len(b.all)
}

// replace 销毁旧实体并在同一位置创建新物种
func (b *BattleScene) replace(old ecs.EntityID, battler int, sp config.SpeciesAnims) ecs.EntityID {
	b.animSystem.Reset(old)
	b.renderSystem.ForgetPlaceholder(old)
	b.entityManager.DestroyEntity(old)
	b.entityManager.RemoveMarkedEntities()
	return b.spawn(battler, sp)
}

// SetVerbose 打印动画启动和结束日志
func (b *BattleScene) SetVerbose(verbose bool) {
	b.engine.Verbose = verbose
}

// Step 推进一帧动画
func (b *BattleScene) Step() {
	b.animSystem.Update()
}

// Busy 是否有动画仍在播放
func (b *BattleScene) Busy() bool {
	return b.animSystem.Busy(b.player) || b.animSystem.Busy(b.opponent)
}

// Player 我方物种
func (b *BattleScene) Player() config.SpeciesAnims {
	return b.all[b.playerIdx]
}

// Opponent 对方物种
func (b *BattleScene) Opponent() config.SpeciesAnims {
	return b.all[b.opponentIdx]
}

// Update 实现 ebiten.Game
func (b *BattleScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		b.PlayOpponentFront()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		b.PlayPlayerBack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.PlayOpponentFront()
		b.PlayPlayerBack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		b.CycleOpponent(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		b.CycleOpponent(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		b.CyclePlayer(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		b.CyclePlayer(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		b.CycleNature(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		b.animSystem.Reset(b.player)
		b.animSystem.Reset(b.opponent)
	}

	for i := 0; i < b.settings.GetSettings().Speed; i++ {
		b.Step()
	}
	return nil
}

// Draw 实现 ebiten.Game
func (b *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 232, G: 240, B: 216, A: 255})

	// 脚下的平台
	platform := color.RGBA{R: 176, G: 200, B: 144, A: 255}
	vector.DrawFilledRect(screen, 440, 180, 200, 24, platform, false)
	vector.DrawFilledRect(screen, 60, 362, 240, 28, platform, false)

	b.renderSystem.Draw(screen)

	player, opponent := b.Player(), b.Opponent()
	nature := b.natures[PlayerBattler]
	set, _ := b.species.BackAnimSet(player.ID)
	front, _ := b.species.FrontAnim(opponent.ID)
	info := fmt.Sprintf("opponent #%d %s  front=%s delay=%d\nplayer #%d %s  back=%s nature=%s\n",
		opponent.ID, opponent.Name, front, opponent.Delay,
		player.ID, player.Name, set, nature)
	info += "F front  B back  Space both  ←/→ opponent  ↑/↓ player  N nature  R reset"
	if b.lastErr != nil {
		info += "\n" + b.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, info, 8, 400)
}

// Layout 实现 ebiten.Game
func (b *BattleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BattleScreenWidth, BattleScreenHeight
}
