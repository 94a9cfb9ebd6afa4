// internal/ui/game_over_panel.go
package ui

import (
	"fmt"
	"go-robotron/internal/app"
	"go-robotron/internal/config"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverPanel — итоги партии и место в таблице рекордов.
type GameOverPanel struct {
	fonts *Fonts
	rect  image.Rectangle
}

func NewGameOverPanel(fonts *Fonts) *GameOverPanel {
	w, h := 380, 260
	x := (config.ScreenWidth - w) / 2
	y := (config.ScreenHeight - h) / 2
	return &GameOverPanel{fonts: fonts, rect: image.Rect(x, y, x+w, y+h)}
}

func (p *GameOverPanel) Draw(screen *ebiten.Image, res app.GameResult) {
	r := p.rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.PanelBorderColor, true)

	cx := r.Min.X + r.Dx()/2
	y := drawCentered(screen, "GAME OVER", p.fonts.Large, cx, r.Min.Y+16, config.GruntColor)
	y += 8

	stats := fmt.Sprintf("Final Score: %s\nWave Reached: %d\nHumans Rescued: %d\nRobots Destroyed: %d",
		formatThousands(res.Score), res.Wave, res.Achievements.HumansRescued, res.Achievements.RobotsDestroyed)
	y = drawCentered(screen, stats, p.fonts.Regular, cx, y, config.TextLightColor)
	y += 10

	rankColor := config.TextLightColor
	if res.NewHighScore || res.TopTen {
		rankColor = config.HighlightColor
	}
	y = drawCentered(screen, res.RankingLine(), p.fonts.Title, cx, y, rankColor)

	drawCentered(screen, "Press SPACE to play again   H: high scores", p.fonts.Regular, cx, y+12, config.TextAccentColor)
}
