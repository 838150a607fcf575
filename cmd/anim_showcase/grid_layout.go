// cmd/anim_showcase/grid_layout.go
// 网格布局管理器 - 计算单元位置、命中测试和绘制单元背景与标签

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/monanim/pkg/ecs"
	"github.com/decker502/monanim/pkg/monanim"
)

// ShowcaseCell 一个动画单元，对应一个精灵实体
type ShowcaseCell struct {
	Entity ecs.EntityID
	Info   monanim.AnimInfo
	// UsedBy 把该动画作为前视动画的物种数量
	UsedBy int
	// Plays 已播放次数
	Plays int
	// idle 动画结束后经过的帧数
	idle int
}

// Label 单元第一行标签
func (c *ShowcaseCell) Label() string {
	return fmt.Sprintf("#%d %s", c.Info.ID, c.Info.Name)
}

// Detail 单元第二行标签
func (c *ShowcaseCell) Detail() string {
	if c.Info.Unused {
		return fmt.Sprintf("unused  x%d", c.Plays)
	}
	return fmt.Sprintf("%d species  x%d", c.UsedBy, c.Plays)
}

// GridLayout 网格布局管理器
type GridLayout struct {
	config *GridConfig
	cells  []*ShowcaseCell

	// 选中的单元索引
	selectedIndex int
}

// NewGridLayout 创建网格布局管理器
func NewGridLayout(config *GridConfig, cells []*ShowcaseCell) *GridLayout {
	return &GridLayout{
		config:        config,
		cells:         cells,
		selectedIndex: -1,
	}
}

// CellPosition 获取指定索引单元左上角的位置
func (g *GridLayout) CellPosition(index int) (float64, float64) {
	row := index / g.config.Columns
	col := index % g.config.Columns

	x := float64(col*(g.config.CellWidth+g.config.Padding) + g.config.Padding)
	y := float64(row*(g.config.CellHeight+g.config.Padding) + g.config.Padding + g.config.TopMargin)

	return x, y
}

// CellCenter 获取指定索引单元精灵区的中心
//
// 标签占用单元底部 30 像素，精灵放在其余区域的中央。
func (g *GridLayout) CellCenter(index int) (float64, float64) {
	x, y := g.CellPosition(index)
	return x + float64(g.config.CellWidth)/2, y + float64(g.config.CellHeight-labelHeight)/2
}

const labelHeight = 30

// GetCellAt 获取指定屏幕坐标处的单元索引
func (g *GridLayout) GetCellAt(screenX, screenY int) int {
	for i := range g.cells {
		x, y := g.CellPosition(i)

		if float64(screenX) >= x && float64(screenX) <= x+float64(g.config.CellWidth) &&
			float64(screenY) >= y && float64(screenY) <= y+float64(g.config.CellHeight) {
			return i
		}
	}

	return -1
}

// RenderBackgrounds 绘制单元背景，在精灵之前调用
func (g *GridLayout) RenderBackgrounds(screen *ebiten.Image) {
	for i := range g.cells {
		x, y := g.CellPosition(i)

		cellColor := color.RGBA{240, 240, 240, 255}
		if i == g.selectedIndex {
			cellColor = color.RGBA{255, 255, 200, 255} // 高亮选中
		}

		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(g.config.CellWidth), float32(g.config.CellHeight), cellColor, false)
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(g.config.CellWidth), float32(g.config.CellHeight), 2,
			color.RGBA{200, 200, 200, 255}, false)
	}
}

// RenderLabels 绘制单元标签，在精灵之后调用
func (g *GridLayout) RenderLabels(screen *ebiten.Image) {
	for i, cell := range g.cells {
		x, y := g.CellPosition(i)

		textBgY := y + float64(g.config.CellHeight) - labelHeight
		vector.DrawFilledRect(screen, float32(x), float32(textBgY),
			float32(g.config.CellWidth), labelHeight, color.RGBA{0, 0, 0, 160}, false)

		ebitenutil.DebugPrintAt(screen, cell.Label(), int(x)+4, int(textBgY))
		ebitenutil.DebugPrintAt(screen, cell.Detail(), int(x)+4, int(textBgY)+13)
	}
}

// SetSelectedIndex 设置选中的单元索引
func (g *GridLayout) SetSelectedIndex(index int) {
	if index >= 0 && index < len(g.cells) {
		g.selectedIndex = index
	}
}

// GetSelectedIndex 获取选中的单元索引
func (g *GridLayout) GetSelectedIndex() int {
	return g.selectedIndex
}

// GetCell 获取指定索引的单元
func (g *GridLayout) GetCell(index int) *ShowcaseCell {
	if index >= 0 && index < len(g.cells) {
		return g.cells[index]
	}
	return nil
}

// Cells 当前页全部单元
func (g *GridLayout) Cells() []*ShowcaseCell {
	return g.cells
}

// GetCellCount 获取单元总数
func (g *GridLayout) GetCellCount() int {
	return len(g.cells)
}
