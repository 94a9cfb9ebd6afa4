// internal/state/play_state.go
package state

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayState — идёт игра. Симуляция шагает фиксированными шагами
// TickDuration, независимо от частоты кадров.
type PlayState struct {
	sm          *StateMachine
	ctx         *Context
	accumulator float64
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{sm: sm, ctx: ctx}
}

func (s *PlayState) Enter() {
	s.accumulator = 0
}

func (s *PlayState) Update(deltaTime float64) {
	// Диалог проверяется до обновления панели: Escape в нём отменяет очистку.
	confirming := s.ctx.HighScores.Confirming()
	s.ctx.handleCommonKeys()
	s.ctx.updateOverlays(deltaTime)

	if component.PauseRequested(
		inpututil.IsKeyJustPressed(ebiten.KeyP),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		confirming,
	) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	s.accumulator += deltaTime
	steps := 0
	for s.accumulator >= config.TickDuration && steps < config.MaxStepsPerFrame {
		s.ctx.Game.Tick(readInput())
		s.accumulator -= config.TickDuration
		steps++
	}
	// Отставание больше MaxStepsPerFrame шагов не догоняем.
	if steps == config.MaxStepsPerFrame {
		s.accumulator = 0
	}

	if !s.ctx.Game.Session.Running() {
		s.sm.SetState(NewGameOverState(s.sm, s.ctx))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.ctx.drawWorld(screen)
	s.ctx.drawOverlays(screen)
}

func (s *PlayState) Exit() {}

// readInput снимает состояние клавиш: WASD — движение, стрелки — стрельба.
func readInput() component.Input {
	return component.Input{
		Up:        ebiten.IsKeyPressed(ebiten.KeyW),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		FireUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		FireDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		FireLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		FireRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

