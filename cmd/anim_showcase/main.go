// cmd/anim_showcase/main.go
// 变换动画展示窗口：每个单元用一个占位精灵播放目录中的一个动画
//
// 用法：
//   go run ./cmd/anim_showcase --config=cmd/anim_showcase/config.yaml --root=.

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/monanim/internal/palette"
	"github.com/decker502/monanim/pkg/components"
	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/embedded"
	"github.com/decker502/monanim/pkg/entities"
	"github.com/decker502/monanim/pkg/game"
	"github.com/decker502/monanim/pkg/monanim"
	"github.com/decker502/monanim/pkg/systems"
)

var (
	configPath = flag.String("config", "cmd/anim_showcase/config.yaml", "配置文件路径")
	rootDir    = flag.String("root", ".", "包含 data/ 目录的项目根目录")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// 展示用精灵的调色板号
const showcasePaletteNum = 0

// Game 展示窗口
type Game struct {
	config   *ShowcaseConfig
	species  *config.MonAnimConfigManager
	settings *game.SettingsManager

	entityManager  *ecs.EntityManager
	engine         *monanim.Engine
	palettes       *palette.Buffer
	animSystem     *systems.MonAnimSystem
	frameSystem    *systems.AnimationSystem
	renderSystem   *systems.MonRenderSystem
	layout         *GridLayout
	frontUsage     map[monanim.AnimID]int
	exampleSpecies map[monanim.AnimID]config.SpeciesAnims

	// 分页
	ids         []monanim.AnimID
	currentPage int
	totalPages  int

	// UI 状态
	showHelp bool
	// battle 为 true 时以战斗任务播放，否则以图鉴模式播放
	battle bool
}

// NewGame 创建展示窗口
func NewGame(cfg *ShowcaseConfig, species *config.MonAnimConfigManager, settings *game.SettingsManager) *Game {
	palettes := palette.NewBuffer()
	pool := monanim.NewPool(cfg.Playback.PoolSize)
	pool.Debug = cfg.Playback.Debug

	engine := monanim.NewEngine(pool, palettes)
	engine.NatureMods = species.NatureTable()
	engine.Strict = settings.GetSettings().Strict
	engine.Verbose = *verbose

	em := ecs.NewEntityManager()
	g := &Game{
		config:         cfg,
		species:        species,
		settings:       settings,
		entityManager:  em,
		engine:         engine,
		palettes:       palettes,
		animSystem:     systems.NewMonAnimSystem(em, engine, palettes, species),
		frameSystem:    systems.NewAnimationSystem(em),
		renderSystem:   systems.NewMonRenderSystem(em, palettes),
		frontUsage:     make(map[monanim.AnimID]int),
		exampleSpecies: make(map[monanim.AnimID]config.SpeciesAnims),
		showHelp:       true,
	}

	for _, sp := range species.Species() {
		g.frontUsage[sp.Front]++
		if _, ok := g.exampleSpecies[sp.Front]; !ok {
			g.exampleSpecies[sp.Front] = sp
		}
	}

	g.rebuildIDs()
	g.showAnim(settings.LastAnim())
	return g
}

// rebuildIDs 按设置重新生成动画列表
func (g *Game) rebuildIDs() {
	if g.settings.GetSettings().ShowUnused {
		g.ids = make([]monanim.AnimID, 0, monanim.AnimCount)
		for id := monanim.AnimID(0); id < monanim.AnimCount; id++ {
			g.ids = append(g.ids, id)
		}
	} else {
		g.ids = monanim.PublicIDs()
	}
	per := g.config.CellsPerPage()
	g.totalPages = (len(g.ids) + per - 1) / per
	log.Printf("[Showcase] %d 个动画, 每页 %d 个, 共 %d 页", len(g.ids), per, g.totalPages)
}

// showAnim 跳转到包含指定动画的页并选中它
func (g *Game) showAnim(id monanim.AnimID) {
	index := 0
	for i, candidate := range g.ids {
		if candidate == id {
			index = i
			break
		}
	}
	per := g.config.CellsPerPage()
	if err := g.loadPage(index / per); err != nil {
		log.Printf("[Showcase] Warning: %v", err)
		return
	}
	g.layout.SetSelectedIndex(index % per)
}

// loadPage 销毁当前页的精灵并为指定页创建新精灵
func (g *Game) loadPage(pageNum int) error {
	if pageNum < 0 || pageNum >= g.totalPages {
		return fmt.Errorf("页码超出范围: %d (总页数: %d)", pageNum, g.totalPages)
	}

	if g.layout != nil {
		for _, cell := range g.layout.Cells() {
			g.animSystem.Reset(cell.Entity)
			g.renderSystem.ForgetPlaceholder(cell.Entity)
			g.entityManager.DestroyEntity(cell.Entity)
		}
		g.entityManager.RemoveMarkedEntities()
	}

	per := g.config.CellsPerPage()
	start := pageNum * per
	end := start + per
	if end > len(g.ids) {
		end = len(g.ids)
	}

	cells := make([]*ShowcaseCell, 0, end-start)
	g.layout = NewGridLayout(&g.config.Grid, nil)
	for i := start; i < end; i++ {
		info, err := monanim.Info(g.ids[i])
		if err != nil {
			return err
		}
		x, y := g.layout.CellCenter(i - start)
		sp := g.exampleSpecies[info.ID]
		if sp.Name == "" {
			sp.Name = info.Name
		}
		entity := entities.NewMonSpriteEntity(g.entityManager, sp, entities.MonSpriteOptions{
			X:             x,
			Y:             y,
			Mirrored:      g.settings.GetSettings().Mirrored,
			PaletteNum:    showcasePaletteNum,
			Colors:        g.config.Sprite.colors,
			FrameCount:    g.config.Sprite.FrameCount,
			TicksPerFrame: g.config.Sprite.TicksPerFrame,
		})
		cells = append(cells, &ShowcaseCell{Entity: entity, Info: info, UsedBy: g.frontUsage[info.ID]})
	}
	g.layout = NewGridLayout(&g.config.Grid, cells)
	g.currentPage = pageNum

	for _, cell := range cells {
		g.play(cell)
	}
	log.Printf("[Showcase] 第 %d/%d 页: %d 个动画", pageNum+1, g.totalPages, len(cells))
	return nil
}

// play 从头播放单元的动画
func (g *Game) play(cell *ShowcaseCell) {
	var err error
	if g.battle {
		err = g.animSystem.PlayAnim(cell.Entity, cell.Info.ID)
	} else {
		// 先结束战斗任务，让它把镜像设置还回来再覆盖
		g.animSystem.Reset(cell.Entity)
		if mon, ok := ecs.GetComponent[*components.MonSpriteComponent](g.entityManager, cell.Entity); ok {
			mon.Sprite.Mirrored = g.settings.GetSettings().Mirrored
		}
		err = g.animSystem.PlaySummary(cell.Entity, cell.Info.ID)
	}
	if err != nil {
		log.Printf("[Showcase] Warning: %s 播放失败: %v", cell.Info.Name, err)
		return
	}
	cell.Plays++
	cell.idle = 0
}

// replayPage 重播当前页全部动画
func (g *Game) replayPage() {
	for _, cell := range g.layout.Cells() {
		g.play(cell)
	}
}

func (g *Game) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Showcase] Warning: 保存设置失败: %v", err)
	}
}

// Update 更新游戏状态
func (g *Game) Update() error {
	g.handleInput()

	for i := 0; i < g.settings.GetSettings().Speed; i++ {
		g.frameSystem.Update()
		g.animSystem.Update()
		g.autoReplay()
	}
	return nil
}

// autoReplay 结束的动画等待 ReplayDelay 帧后重播
func (g *Game) autoReplay() {
	if g.config.Playback.ReplayDelay <= 0 {
		return
	}
	for _, cell := range g.layout.Cells() {
		if g.animSystem.Busy(cell.Entity) {
			continue
		}
		cell.idle++
		if cell.idle >= g.config.Playback.ReplayDelay {
			g.play(cell)
		}
	}
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	// 翻页
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) && g.currentPage < g.totalPages-1 {
		if err := g.loadPage(g.currentPage + 1); err != nil {
			log.Printf("[Showcase] Warning: 加载下一页失败: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) && g.currentPage > 0 {
		if err := g.loadPage(g.currentPage - 1); err != nil {
			log.Printf("[Showcase] Warning: 加载上一页失败: %v", err)
		}
	}

	// 数字键快速跳转
	for key := ebiten.Key0; key <= ebiten.Key9; key++ {
		if inpututil.IsKeyJustPressed(key) {
			pageNum := int(key - ebiten.Key0)
			if key == ebiten.Key0 {
				pageNum = 10 // 0 键代表第 10 页
			}
			pageNum--
			if pageNum >= 0 && pageNum < g.totalPages {
				if err := g.loadPage(pageNum); err != nil {
					log.Printf("[Showcase] Warning: 跳转到第 %d 页失败: %v", pageNum+1, err)
				}
			}
		}
	}

	// 方向键移动选中单元
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.moveSelection(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.moveSelection(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.moveSelection(g.config.Grid.Columns)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.moveSelection(-g.config.Grid.Columns)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if cell := g.layout.GetCell(g.layout.GetSelectedIndex()); cell != nil {
			g.play(cell)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.replayPage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for _, cell := range g.layout.Cells() {
			g.animSystem.Reset(cell.Entity)
			cell.idle = 0
		}
	}

	// 模式与设置
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.battle = !g.battle
		log.Printf("[Showcase] 播放模式: %s", g.modeName())
		g.replayPage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.settings.SetMirrored(!g.settings.GetSettings().Mirrored)
		g.saveSettings()
		g.replayPage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.settings.SetSpeed(g.settings.GetSettings().Speed + 1)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.settings.SetSpeed(g.settings.GetSettings().Speed - 1)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.settings.SetStrict(!g.settings.GetSettings().Strict)
		g.engine.Strict = g.settings.GetSettings().Strict
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		selected := g.selectedAnim()
		g.settings.SetShowUnused(!g.settings.GetSettings().ShowUnused)
		g.saveSettings()
		g.rebuildIDs()
		g.showAnim(selected)
	}

	// 鼠标点击：选中并重播
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if index := g.layout.GetCellAt(x, y); index >= 0 {
			g.layout.SetSelectedIndex(index)
			g.rememberSelection()
			g.play(g.layout.GetCell(index))
		}
	}
}

// moveSelection 移动选中单元，越过页边界时翻页
func (g *Game) moveSelection(delta int) {
	per := g.config.CellsPerPage()
	current := g.currentPage*per + g.layout.GetSelectedIndex()
	if g.layout.GetSelectedIndex() < 0 {
		current = g.currentPage * per
	}
	next := current + delta
	if next < 0 || next >= len(g.ids) {
		return
	}
	if next/per != g.currentPage {
		if err := g.loadPage(next / per); err != nil {
			log.Printf("[Showcase] Warning: %v", err)
			return
		}
	}
	g.layout.SetSelectedIndex(next % per)
	g.rememberSelection()
}

func (g *Game) selectedAnim() monanim.AnimID {
	if cell := g.layout.GetCell(g.layout.GetSelectedIndex()); cell != nil {
		return cell.Info.ID
	}
	return g.settings.LastAnim()
}

func (g *Game) rememberSelection() {
	g.settings.SetLastAnim(g.selectedAnim())
	g.saveSettings()
}

func (g *Game) modeName() string {
	if g.battle {
		return "battle"
	}
	return "summary"
}

// Draw 绘制游戏画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.config.Window.background)

	g.layout.RenderBackgrounds(screen)
	g.renderSystem.Draw(screen)
	g.layout.RenderLabels(screen)

	g.drawInfoBar(screen)
	if g.showHelp {
		g.drawHelp(screen)
	}
}

// drawInfoBar 绘制顶部信息栏
func (g *Game) drawInfoBar(screen *ebiten.Image) {
	s := g.settings.GetSettings()
	info := fmt.Sprintf("TPS: %.1f | 第 %d/%d 页 | %s | mirrored=%v | x%d | strict=%v | slots %d/%d",
		ebiten.ActualTPS(), g.currentPage+1, g.totalPages, g.modeName(), s.Mirrored, s.Speed, s.Strict,
		g.engine.Pool.InUse(), g.engine.Pool.Size())
	if g.config.Playback.Debug {
		info += fmt.Sprintf(" | overwrites %d", g.engine.Pool.Overwrites())
	}
	if cell := g.layout.GetCell(g.layout.GetSelectedIndex()); cell != nil {
		info += " | " + cell.Info.String()
	}

	vector.DrawFilledRect(screen, 0, 0, float32(g.config.Window.Width), float32(g.config.Grid.TopMargin),
		color.RGBA{0, 0, 0, 160}, false)
	ebitenutil.DebugPrintAt(screen, info, 10, 8)
}

var helpLines = []string{
	"操作说明:",
	"  PageDown/PageUp - 翻页",
	"  1-9 数字键      - 快速跳转页面",
	"  方向键          - 移动选中单元",
	"  Enter / 左键    - 重播选中动画",
	"  Space           - 重播当前页",
	"  R               - 复位当前页",
	"  B               - 切换战斗/图鉴模式",
	"  M               - 切换镜像",
	"  +/-             - 播放速度",
	"  S               - 严格模式",
	"  U               - 显示未使用的动画",
	"  H               - 显示/隐藏帮助",
}

// drawHelp 绘制帮助信息
func (g *Game) drawHelp(screen *ebiten.Image) {
	helpWidth := 260
	helpHeight := 20 + len(helpLines)*16
	helpX := g.config.Window.Width - helpWidth - 20
	helpY := g.config.Window.Height - helpHeight - 20

	vector.DrawFilledRect(screen, float32(helpX), float32(helpY), float32(helpWidth), float32(helpHeight),
		color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(helpLines, "\n"), helpX+10, helpY+10)
}

// Layout 设置窗口布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 动画展示启动 ===")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	embedded.Init(nil, os.DirFS(*rootDir))
	species, err := config.NewMonAnimConfigManager("data")
	if err != nil {
		log.Fatalf("加载物种动画表失败: %v", err)
	}

	settings := game.NewSettingsManager(game.OpenStorage("monanim_showcase"))
	g := NewGame(cfg, species, settings)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Playback.TPS)

	log.Printf("[Showcase] 窗口配置: %dx%d @ %d TPS", cfg.Window.Width, cfg.Window.Height, cfg.Playback.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
