// internal/system/visual_effect.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/utils"
)

// ParticleSystem управляет частицами взрывов.
type ParticleSystem struct {
	store *entity.Store
	rng   *utils.PRNGService
}

// NewParticleSystem создает новую систему частиц.
func NewParticleSystem(store *entity.Store, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{store: store, rng: rng}
}

// Update двигает частицы и уменьшает их время жизни.
func (s *ParticleSystem) Update() {
	for _, p := range s.store.Particles {
		p.X += p.DX
		p.Y += p.DY
		p.Life--
	}
	s.store.RemoveParticles(func(p *component.Particle) bool {
		return p.Life <= 0 || !insideArena(p.X, p.Y)
	})
}

// Explode создаёт вспышку из ExplosionParticles частиц в точке (x, y).
func (s *ParticleSystem) Explode(x, y float64) {
	half := config.ParticleSpread / 2
	for i := 0; i < config.ExplosionParticles; i++ {
		s.store.AddParticle(&component.Particle{
			Position: component.Position{X: x, Y: y},
			DX:       s.rng.Range(-half, half),
			DY:       s.rng.Range(-half, half),
			Life:     config.ParticleLife,
			Color:    component.ParticleYellow,
		})
	}
}
