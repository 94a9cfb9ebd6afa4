// pkg/render/arena_renderer.go
package render

import (
	"go-robotron/internal/app"
	"go-robotron/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// particleSize — сторона квадрата частицы в пикселях.
const particleSize = 2

// ArenaRenderer рисует поле и все сущности цветными квадратами.
type ArenaRenderer struct {
	colors     *ArenaColors
	width      int
	height     int
	background *ebiten.Image // Предрендеренный фон
}

func NewArenaRenderer(colors *ArenaColors, width, height int) *ArenaRenderer {
	r := &ArenaRenderer{
		colors:     colors,
		width:      width,
		height:     height,
		background: ebiten.NewImage(width, height),
	}
	r.renderBackground()
	return r
}

// renderBackground рисует фон один раз.
func (r *ArenaRenderer) renderBackground() {
	r.background.Fill(r.colors.BackgroundColor)
	vector.StrokeRect(r.background, 1, 1, float32(r.width-2), float32(r.height-2), 2, DarkenColor(r.colors.BorderColor), false)
}

// Draw рисует снимок состояния игры.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.DrawImage(r.background, nil)

	p := snap.Player
	fillCentered(screen, p.X, p.Y, p.Size, r.colors.PlayerColor)

	for _, b := range snap.Bullets {
		fillCentered(screen, b.X, b.Y, b.Size, r.colors.BulletColor)
	}
	for _, robot := range snap.Robots {
		fillCentered(screen, robot.X, robot.Y, robot.Size, r.colors.RobotColor(robot.Variant))
	}
	for _, h := range snap.Humans {
		fillCentered(screen, h.X, h.Y, h.Size, r.colors.HumanColor)
	}
	for _, part := range snap.Particles {
		col := FadeColor(r.colors.ParticleColor(part.Color), float64(part.Life)/config.ParticleLife)
		fillCentered(screen, part.X, part.Y, particleSize, col)
	}
}

// fillCentered рисует квадрат со стороной size с центром в (x, y).
func fillCentered(screen *ebiten.Image, x, y, size float64, col color.Color) {
	vector.DrawFilledRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), col, false)
}
