// internal/ui/high_score_panel.go
package ui

import (
	"fmt"
	"go-robotron/internal/config"
	"go-robotron/internal/interfaces"
	"go-robotron/internal/ledger"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 470
	panelMargin    = 20
	animationSpeed = 30.0
	lineHeight     = 22
)

// HighScorePanel выезжает снизу и показывает таблицу рекордов и статистику.
// Delete запрашивает очистку, Y подтверждает, N отменяет.
type HighScorePanel struct {
	IsVisible  bool
	fonts      *Fonts
	board      interfaces.ScoreBoard
	confirming bool
	currentY   float64
	targetY    float64
}

func NewHighScorePanel(fonts *Fonts, board interfaces.ScoreBoard) *HighScorePanel {
	return &HighScorePanel{
		fonts:    fonts,
		board:    board,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *HighScorePanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight - panelMargin
}

func (p *HighScorePanel) Hide() {
	p.confirming = false
	p.targetY = config.ScreenHeight
}

func (p *HighScorePanel) Toggle() {
	if p.IsVisible && p.targetY < config.ScreenHeight {
		p.Hide()
	} else {
		p.Show()
	}
}

// Confirming сообщает, что панель ждёт ответа Y/N на очистку.
func (p *HighScorePanel) Confirming() bool {
	return p.confirming
}

func (p *HighScorePanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}

	if !p.IsVisible {
		return
	}

	switch {
	case p.confirming && inpututil.IsKeyJustPressed(ebiten.KeyY):
		p.board.Clear()
		p.confirming = false
		log.Println("High scores cleared")
	case p.confirming && (inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)):
		p.confirming = false
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		p.confirming = true
	}
}

func (p *HighScorePanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY),
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.PanelBorderColor, true)

	cx := panelRect.Min.X + panelRect.Dx()/2
	y := drawCentered(screen, "HIGH SCORES", p.fonts.Title, cx, panelRect.Min.Y+12, config.HighlightColor)
	y += 8

	p.drawScores(screen, panelRect, y)
	p.drawStats(screen, panelRect, panelRect.Min.Y+12*lineHeight+40)

	hint := "H: close   Delete: clear scores"
	if p.confirming {
		hint = "Clear all high scores? (Y/N)"
	}
	drawCentered(screen, hint, p.fonts.Regular, cx, panelRect.Max.Y-lineHeight-6, config.TextLightColor)
}

func (p *HighScorePanel) drawScores(screen *ebiten.Image, panelRect image.Rectangle, y int) {
	scores := p.board.Scores()
	if len(scores) == 0 {
		drawCentered(screen, "No scores yet. Start playing to set your first record!", p.fonts.Regular, panelRect.Min.X+panelRect.Dx()/2, y+lineHeight, config.TextLightColor)
		return
	}

	left := panelRect.Min.X + 20
	right := panelRect.Max.X - 20
	for i, r := range scores {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.HighlightColor
		}
		row := y + i*lineHeight
		drawLeft(screen, fmt.Sprintf("#%d", i+1), p.fonts.Regular, left, row, clr)
		drawLeft(screen, formatThousands(r.Score), p.fonts.Regular, left+50, row, clr)
		info := fmt.Sprintf("Wave %d, %d humans saved", r.Wave, r.Achievements.HumansRescued)
		drawLeft(screen, info, p.fonts.Regular, left+150, row, config.TextAccentColor)
		extra := fmt.Sprintf("R:%d P:%d  %s", r.Achievements.RobotsDestroyed, r.Achievements.PerfectWaves, ledger.FormatDate(r.RecordTime()))
		drawRight(screen, extra, p.fonts.Regular, right, row, config.TextLightColor)
	}
}

func (p *HighScorePanel) drawStats(screen *ebiten.Image, panelRect image.Rectangle, y int) {
	s := p.board.Stats()
	items := []struct {
		label string
		value string
	}{
		{"Games Played", formatThousands(s.TotalGames)},
		{"Average Score", formatThousands(s.AverageScore)},
		{"Humans Rescued", formatThousands(s.TotalHumansRescued)},
		{"Robots Destroyed", formatThousands(s.TotalRobotsDestroyed)},
		{"Waves Completed", formatThousands(s.TotalWavesCompleted)},
		{"Perfect Waves", formatThousands(s.TotalPerfectWaves)},
	}
	colWidth := panelRect.Dx() / 3
	for i, it := range items {
		cx := panelRect.Min.X + colWidth*(i%3) + colWidth/2
		row := y + (i/3)*(2*lineHeight+6)
		next := drawCentered(screen, it.value, p.fonts.Title, cx, row, config.HighlightColor)
		drawCentered(screen, it.label, p.fonts.Regular, cx, next, config.TextLightColor)
	}
}
