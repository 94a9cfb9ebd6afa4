// internal/app/snapshot.go
package app

import "go-robotron/internal/component"

// HUD — значения для верхней панели.
type HUD struct {
	Score     int
	Wave      int
	Humans    int
	Lives     int
	HighScore int
}

// Snapshot — копия состояния для отрисовки. Рендер не меняет игру.
type Snapshot struct {
	Player    component.Player
	Bullets   []component.Bullet
	Robots    []component.Robot
	Humans    []component.Human
	Particles []component.Particle
	HUD       HUD
	Phase     component.Phase
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Player:    *g.Store.Player,
		Bullets:   copyAll(g.Store.Bullets),
		Robots:    copyAll(g.Store.Robots),
		Humans:    copyAll(g.Store.Humans),
		Particles: copyAll(g.Store.Particles),
		Phase:     g.Session.Phase,
		HUD: HUD{
			Score:     g.Session.Score,
			Wave:      g.Session.Wave,
			Humans:    len(g.Store.Humans),
			Lives:     g.Session.Lives,
			HighScore: g.HighScore(),
		},
	}
	return s
}

func copyAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}
