// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-robotron/internal/app"
	"go-robotron/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudHeight = 24

// HUD — верхняя строка с очками, волной, людьми, жизнями и рекордом.
type HUD struct {
	fonts *Fonts
}

func NewHUD(fonts *Fonts) *HUD {
	return &HUD{fonts: fonts}
}

func (h *HUD) Draw(screen *ebiten.Image, hud app.HUD, soundOn bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, hudHeight, config.PanelColor, false)

	face := h.fonts.Regular
	left := fmt.Sprintf("SCORE: %s   WAVE: %d   HUMANS: %d   LIVES: %d",
		formatThousands(hud.Score), hud.Wave, hud.Humans, hud.Lives)
	drawLeft(screen, left, face, 8, 4, config.TextAccentColor)

	sound := "SOUND: ON"
	if !soundOn {
		sound = "SOUND: OFF"
	}
	right := fmt.Sprintf("HIGH: %s   %s", formatThousands(hud.HighScore), sound)
	drawRight(screen, right, face, config.ScreenWidth-8, 4, config.TextLightColor)
}
