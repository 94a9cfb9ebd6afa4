// internal/state/context.go
package state

import (
	"go-robotron/internal/app"
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/event"
	"go-robotron/internal/ledger"
	"go-robotron/internal/sound"
	"go-robotron/internal/ui"
	"go-robotron/pkg/render"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Context — общие для всех состояний объекты: игра, звук, рекорды и UI.
type Context struct {
	Game       *app.Game
	Sound      *sound.Manager
	Scores     *ledger.Ledger
	Renderer   *render.ArenaRenderer
	HUD        *ui.HUD
	Banner     *ui.Banner
	HighScores *ui.HighScorePanel
	GameOver   *ui.GameOverPanel
}

func NewContext(game *app.Game, snd *sound.Manager, scores *ledger.Ledger) *Context {
	fonts := ui.LoadFonts()
	colors := &render.ArenaColors{
		BackgroundColor: config.BackgroundColor,
		BorderColor:     config.PanelBorderColor,
		PlayerColor:     config.PlayerColor,
		BulletColor:     config.BulletColor,
		GruntColor:      config.GruntColor,
		HulkColor:       config.HulkColor,
		HumanColor:      config.HumanColor,
		ParticleColors: map[component.ParticleColor]color.RGBA{
			component.ParticleYellow: config.ExplosionColor,
		},
	}

	ctx := &Context{
		Game:       game,
		Sound:      snd,
		Scores:     scores,
		Renderer:   render.NewArenaRenderer(colors, config.ScreenWidth, config.ScreenHeight),
		HUD:        ui.NewHUD(fonts),
		Banner:     ui.NewBanner(fonts),
		HighScores: ui.NewHighScorePanel(fonts, scores),
		GameOver:   ui.NewGameOverPanel(fonts),
	}
	game.EventDispatcher.Subscribe(event.AchievementUnlocked, ctx.Banner)
	snd.Subscribe(game.EventDispatcher)
	return ctx
}

// handleCommonKeys — клавиши, работающие в любом состоянии.
func (c *Context) handleCommonKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		on := c.Sound.Toggle()
		log.Printf("Sound enabled: %v", on)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		c.HighScores.Toggle()
	}
}

// updateOverlays обновляет баннер и панель рекордов.
func (c *Context) updateOverlays(deltaTime float64) {
	c.Banner.Update(deltaTime)
	c.HighScores.Update()
}

// drawWorld рисует поле и HUD.
func (c *Context) drawWorld(screen *ebiten.Image) {
	snap := c.Game.Snapshot()
	c.Renderer.Draw(screen, snap)
	c.HUD.Draw(screen, snap.HUD, c.Sound.Enabled())
}

// drawOverlays рисует всё, что поверх поля.
func (c *Context) drawOverlays(screen *ebiten.Image) {
	c.Banner.Draw(screen)
	c.HighScores.Draw(screen)
}
