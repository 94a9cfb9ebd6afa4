// internal/state/game_over_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — партия закончена, пробел начинает новую.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {
	if res, ok := s.ctx.Game.Result(); ok {
		log.Printf("Final score %d, %s", res.Score, res.RankingLine())
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	s.ctx.handleCommonKeys()
	s.ctx.updateOverlays(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.ctx.Game.Restart()
		s.ctx.Banner.Dismiss()
		s.ctx.HighScores.Hide()
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.ctx.drawWorld(screen)
	if res, ok := s.ctx.Game.Result(); ok {
		s.ctx.GameOver.Draw(screen, res)
	}
	s.ctx.drawOverlays(screen)
}

func (s *GameOverState) Exit() {}
