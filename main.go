package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/ui"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("config: %v", err)
	}

	notices := ui.NewNotices()
	opts := []game.Option{game.WithNotifier(notices)}
	if cfg.MusicPath != "" {
		music := audio.NewMusic(cfg.MusicPath)
		defer music.Close()
		opts = append(opts, game.WithMusic(music))
	}

	g, err := game.NewGame(cfg.Game, opts...)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	log.SetPrefix("[" + g.UUID[:8] + "] ")
	log.Printf("session started: %dx%d grid, cell %d, seed %d",
		cfg.Game.Grid.Width, cfg.Game.Grid.Height, cfg.Game.Grid.Cell, cfg.Game.Seed)

	ui.InitWindow(g.Grid, cfg.Title, int32(cfg.FPS))
	defer ui.CloseWindow()

	// Both sprites must be ready before the first frame is scheduled.
	assets, err := ui.LoadAssets(cfg.SnakeImage, cfg.FoodImage)
	if err != nil {
		ui.CloseWindow()
		log.Fatalf("assets: %v", err)
	}
	defer assets.Unload()

	renderer := ui.NewRenderer(assets, notices, cfg.Title)
	host := &ui.Host{Game: g, Notices: notices}

	game.NewDriver(g, game.SystemClock{}, renderer).Run(host)

	if !g.Running() {
		log.Printf("session over after %d captures", g.Captures())
		host.Linger(renderer)
	}
}
