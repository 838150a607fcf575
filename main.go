package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/embedded"
	"github.com/decker502/monanim/pkg/game"
	"github.com/decker502/monanim/pkg/monanim"
)

var (
	playerName   = flag.String("player", "pikachu", "我方物种名")
	opponentName = flag.String("opponent", "bulbasaur", "对方物种名")
	natureName   = flag.String("nature", "hardy", "我方性格")
	verbose      = flag.Bool("verbose", false, "打印动画启动和结束日志")
)

func main() {
	flag.Parse()

	// 数据文件嵌入在二进制中，没有图片资源
	embedded.Init(nil, dataFS)

	species, err := config.NewMonAnimConfigManager("data")
	if err != nil {
		log.Fatalf("Failed to load species animation table: %v", err)
	}
	nature, err := monanim.ParseNature(*natureName)
	if err != nil {
		log.Fatalf("Invalid nature: %v", err)
	}

	settings := game.NewSettingsManager(game.OpenStorage("monanim"))
	scene, err := game.NewBattleScene(species, settings, game.BattleSceneOptions{
		Player:       *playerName,
		Opponent:     *opponentName,
		PlayerNature: nature,
	})
	if err != nil {
		log.Fatalf("Failed to create battle scene: %v", err)
	}
	scene.SetVerbose(*verbose)

	ebiten.SetWindowSize(game.BattleScreenWidth, game.BattleScreenHeight)
	ebiten.SetWindowTitle("Mon Anim - Battle")

	if err := ebiten.RunGame(scene); err != nil {
		log.Fatal(err)
	}
}
