// internal/system/player_system.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"go-robotron/internal/utils"
)

// PlayerSystem двигает игрока по вводу и создаёт пули.
type PlayerSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{store: store, eventDispatcher: eventDispatcher}
}

// Update применяет флаги движения, затем флаги стрельбы.
// Направления движения комбинируются, стрельба только по осям.
func (s *PlayerSystem) Update(input component.Input) {
	p := s.store.Player

	if input.Up {
		p.Y -= p.Speed
	}
	if input.Down {
		p.Y += p.Speed
	}
	if input.Left {
		p.X -= p.Speed
	}
	if input.Right {
		p.X += p.Speed
	}
	half := p.Size / 2
	p.X = utils.Clamp(p.X, half, config.ScreenWidth-half)
	p.Y = utils.Clamp(p.Y, half, config.ScreenHeight-half)

	if input.FireUp {
		s.fire(0, -1)
	}
	if input.FireDown {
		s.fire(0, 1)
	}
	if input.FireLeft {
		s.fire(-1, 0)
	}
	if input.FireRight {
		s.fire(1, 0)
	}
}

// fire создаёт пулю в позиции игрока. Сверх лимита выстрел молча теряется.
func (s *PlayerSystem) fire(dx, dy float64) {
	if len(s.store.Bullets) >= config.MaxBullets {
		return
	}
	p := s.store.Player
	s.store.AddBullet(&component.Bullet{
		Position: p.Position,
		DX:       dx * config.BulletSpeed,
		DY:       dy * config.BulletSpeed,
		Size:     config.BulletSize,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired})
}
