package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Renderer draws the food and every snake cell as a cell-sized sprite
type Renderer struct {
	assets   *Assets
	notices  *Notices
	title    string
	captures int
}

func NewRenderer(assets *Assets, notices *Notices, title string) *Renderer {
	return &Renderer{
		assets:   assets,
		notices:  notices,
		title:    title,
		captures: -1,
	}
}

func (r *Renderer) Render(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	cell := float32(g.Grid.Cell)
	drawSprite(r.assets.Food, g.Food(), cell)
	for _, p := range g.SnakeCells() {
		drawSprite(r.assets.Snake, p, cell)
	}

	if r.notices != nil {
		r.notices.Draw(g.Grid)
	}
	rl.EndDrawing()

	if captures := g.Captures(); captures != r.captures {
		r.captures = captures
		rl.SetWindowTitle(fmt.Sprintf("%s - caught %d", r.title, captures))
	}
}

func drawSprite(tex rl.Texture2D, p types.Point, cell float32) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(p.X), float32(p.Y), cell, cell)
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}
