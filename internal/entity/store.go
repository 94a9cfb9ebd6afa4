// internal/entity/store.go
package entity

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
)

// Store хранит все сущности игры. Коллекции упорядочены по времени
// добавления, игрок — единственный и существует всю сессию.
type Store struct {
	Player    *component.Player
	Bullets   []*component.Bullet
	Robots    []*component.Robot
	Humans    []*component.Human
	Particles []*component.Particle
}

// Counts — размеры коллекций, для HUD и отладки.
type Counts struct {
	Bullets   int
	Robots    int
	Humans    int
	Particles int
}

func NewStore() *Store {
	return &Store{
		Player: &component.Player{
			Position: component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
			Size:     config.PlayerSize,
			Speed:    config.PlayerSpeed,
		},
	}
}

func (s *Store) AddBullet(b *component.Bullet)     { s.Bullets = append(s.Bullets, b) }
func (s *Store) AddRobot(r *component.Robot)       { s.Robots = append(s.Robots, r) }
func (s *Store) AddHuman(h *component.Human)       { s.Humans = append(s.Humans, h) }
func (s *Store) AddParticle(p *component.Particle) { s.Particles = append(s.Particles, p) }

// RemoveBullets удаляет пули, для которых pred вернул true.
func (s *Store) RemoveBullets(pred func(*component.Bullet) bool) int {
	var n int
	s.Bullets, n = removeIf(s.Bullets, pred)
	return n
}

func (s *Store) RemoveRobots(pred func(*component.Robot) bool) int {
	var n int
	s.Robots, n = removeIf(s.Robots, pred)
	return n
}

func (s *Store) RemoveHumans(pred func(*component.Human) bool) int {
	var n int
	s.Humans, n = removeIf(s.Humans, pred)
	return n
}

func (s *Store) RemoveParticles(pred func(*component.Particle) bool) int {
	var n int
	s.Particles, n = removeIf(s.Particles, pred)
	return n
}

// ClearWave убирает всё, что принадлежит текущей волне. Частицы остаются.
func (s *Store) ClearWave() {
	s.Bullets = s.Bullets[:0]
	s.Robots = s.Robots[:0]
	s.Humans = s.Humans[:0]
}

// ClearAll сбрасывает хранилище и возвращает игрока в центр.
func (s *Store) ClearAll() {
	s.ClearWave()
	s.Particles = s.Particles[:0]
	s.Player.X = config.ScreenWidth / 2
	s.Player.Y = config.ScreenHeight / 2
}

func (s *Store) Counts() Counts {
	return Counts{
		Bullets:   len(s.Bullets),
		Robots:    len(s.Robots),
		Humans:    len(s.Humans),
		Particles: len(s.Particles),
	}
}

// removeIf фильтрует срез на месте, сохраняя порядок.
func removeIf[T any](items []*T, pred func(*T) bool) ([]*T, int) {
	kept := items[:0]
	for _, item := range items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(items) - len(kept)
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept, removed
}
