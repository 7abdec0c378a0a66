package main

import (
	"flag"
	"fmt"
	"time"

	"snake-arcade/game"
)

// Config is everything main needs to start a session
type Config struct {
	Game       game.Config
	SnakeImage string
	FoodImage  string
	MusicPath  string
	FPS        int
	Title      string
}

// ParseConfig reads command line flags on top of the game defaults
func ParseConfig(args []string) (Config, error) {
	def := game.DefaultConfig()

	fs := flag.NewFlagSet("snake-arcade", flag.ContinueOnError)
	width := fs.Int("width", def.Grid.Width, "Playfield width in pixels (multiple of -cell)")
	height := fs.Int("height", def.Grid.Height, "Playfield height in pixels (multiple of -cell)")
	cell := fs.Int("cell", def.Grid.Cell, "Cell size in pixels")
	snakeSpeed := fs.Int("snake-speed", int(def.SnakeInterval/time.Millisecond), "Initial snake move interval in milliseconds (lower = faster)")
	foodSpeed := fs.Int("food-speed", int(def.FoodInterval/time.Millisecond), "Initial food move interval in milliseconds")
	minFoodSpeed := fs.Int("min-food-speed", int(def.MinFoodInterval/time.Millisecond), "Fastest food move interval in milliseconds")
	seed := fs.Uint64("seed", 0, "Food placement seed (0 = time based)")
	snakeImage := fs.String("snake-img", "snake.png", "Snake sprite")
	foodImage := fs.String("food-img", "food.png", "Food sprite")
	music := fs.String("music", "bgm.mp3", "Looping background track, mp3 or wav (empty = silent)")
	fps := fs.Int("fps", 60, "Target frames per second")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Game:       def,
		SnakeImage: *snakeImage,
		FoodImage:  *foodImage,
		MusicPath:  *music,
		FPS:        *fps,
		Title:      "Snake",
	}
	cfg.Game.Grid.Width = *width
	cfg.Game.Grid.Height = *height
	cfg.Game.Grid.Cell = *cell
	cfg.Game.SnakeInterval = time.Duration(*snakeSpeed) * time.Millisecond
	cfg.Game.FoodInterval = time.Duration(*foodSpeed) * time.Millisecond
	cfg.Game.MinFoodInterval = time.Duration(*minFoodSpeed) * time.Millisecond
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", c.FPS)
	}
	if c.SnakeImage == "" || c.FoodImage == "" {
		return fmt.Errorf("both -snake-img and -food-img are required")
	}
	return nil
}
