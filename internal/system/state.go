// internal/system/state.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"log"
)

// StateSystem отвечает за жизни игрока и переход в GameOver.
type StateSystem struct {
	store           *entity.Store
	session         *component.Session
	particles       *ParticleSystem
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(store *entity.Store, session *component.Session, particles *ParticleSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		store:           store,
		session:         session,
		particles:       particles,
		eventDispatcher: eventDispatcher,
	}
}

// HitPlayer снимает одну жизнь. Возвращает true, если игра окончена.
func (s *StateSystem) HitPlayer() bool {
	if s.session.Lives > 0 {
		s.session.Lives--
	}
	s.session.Achievements.BreakStreak()

	p := s.store.Player
	s.particles.Explode(p.X, p.Y)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{LivesLeft: s.session.Lives},
	})

	if s.session.Lives <= 0 {
		s.SwitchToGameOver()
		return true
	}

	p.X = config.ScreenWidth / 2
	p.Y = config.ScreenHeight / 2
	return false
}

// SwitchToGameOver фиксирует итоговый счёт и останавливает симуляцию.
func (s *StateSystem) SwitchToGameOver() {
	if s.session.Phase == component.GameOver {
		return
	}
	s.session.Phase = component.GameOver
	log.Printf("Game over: score %d, wave %d", s.session.Score, s.session.Wave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{
			Score:        s.session.Score,
			Wave:         s.session.Wave,
			Achievements: s.session.Achievements,
		},
	})
}
