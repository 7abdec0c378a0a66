package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Assets holds the two sprites drawn every frame
type Assets struct {
	Snake rl.Texture2D
	Food  rl.Texture2D
}

// LoadAssets loads both textures. It must run after the window is open; a
// texture that fails to load aborts startup.
func LoadAssets(snakePath, foodPath string) (*Assets, error) {
	snake, err := loadTexture(snakePath)
	if err != nil {
		return nil, err
	}
	food, err := loadTexture(foodPath)
	if err != nil {
		rl.UnloadTexture(snake)
		return nil, err
	}
	return &Assets{Snake: snake, Food: food}, nil
}

func loadTexture(path string) (rl.Texture2D, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("load texture %q: not a readable image", path)
	}
	return tex, nil
}

func (a *Assets) Unload() {
	rl.UnloadTexture(a.Snake)
	rl.UnloadTexture(a.Food)
}
