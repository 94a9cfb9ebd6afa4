// internal/system/combat.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/defs"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"go-robotron/internal/utils"
)

// CollisionSystem разрешает столкновения после того, как все сущности сдвинулись.
// Касание — расстояние между центрами меньше суммы полуразмеров.
type CollisionSystem struct {
	store           *entity.Store
	session         *component.Session
	particles       *ParticleSystem
	state           *StateSystem
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(store *entity.Store, session *component.Session, particles *ParticleSystem, state *StateSystem, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		store:           store,
		session:         session,
		particles:       particles,
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

// Update возвращает false, если попадание в игрока закончило игру.
// В этом случае остаток шага пропускается.
func (s *CollisionSystem) Update() bool {
	s.bulletsVsRobots()

	if s.playerTouchesRobot() {
		if s.state.HitPlayer() {
			return false
		}
	}

	s.robotsVsHumans()
	s.playerVsHumans()
	return true
}

// bulletsVsRobots: каждая пуля убивает не больше одного робота,
// каждый робот погибает один раз.
func (s *CollisionSystem) bulletsVsRobots() {
	spent := make(map[*component.Bullet]bool)
	for _, b := range s.store.Bullets {
		for _, r := range s.store.Robots {
			if r.Health <= 0 {
				continue
			}
			if !utils.Touching(b.X, b.Y, b.Size, r.X, r.Y, r.Size, 0) {
				continue
			}
			spent[b] = true
			r.Health--
			if r.Health <= 0 {
				s.destroyRobot(r)
			}
			break
		}
	}
	if len(spent) == 0 {
		return
	}
	s.store.RemoveBullets(func(b *component.Bullet) bool { return spent[b] })
	s.store.RemoveRobots(func(r *component.Robot) bool { return r.Health <= 0 })
}

func (s *CollisionSystem) destroyRobot(r *component.Robot) {
	points := defs.PointsFor(r.Variant)
	s.particles.Explode(r.X, r.Y)
	s.session.Score += points
	s.session.Achievements.RobotsDestroyed++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RobotDestroyed,
		Data: event.RobotDestroyedData{Variant: r.Variant, X: r.X, Y: r.Y, Points: points},
	})
}

func (s *CollisionSystem) playerTouchesRobot() bool {
	p := s.store.Player
	for _, r := range s.store.Robots {
		if utils.Touching(p.X, p.Y, p.Size, r.X, r.Y, r.Size, 0) {
			return true
		}
	}
	return false
}

func (s *CollisionSystem) robotsVsHumans() {
	s.store.RemoveHumans(func(h *component.Human) bool {
		for _, r := range s.store.Robots {
			if utils.Touching(r.X, r.Y, r.Size, h.X, h.Y, h.Size, 0) {
				s.session.Achievements.BreakStreak()
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.HumanCaptured,
					Data: event.HumanData{X: h.X, Y: h.Y},
				})
				return true
			}
		}
		return false
	})
}

func (s *CollisionSystem) playerVsHumans() {
	p := s.store.Player
	s.store.RemoveHumans(func(h *component.Human) bool {
		if !utils.Touching(p.X, p.Y, p.Size, h.X, h.Y, h.Size, config.RescueRadius) {
			return false
		}
		s.session.Score += config.RescuePoints
		s.session.Achievements.Rescue()
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.HumanRescued,
			Data: event.HumanData{X: h.X, Y: h.Y},
		})
		return true
	})
}
