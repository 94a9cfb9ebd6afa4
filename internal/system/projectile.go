// internal/system/projectile.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/entity"
)

// ProjectileSystem двигает пули и убирает вылетевшие за поле.
type ProjectileSystem struct {
	store *entity.Store
}

func NewProjectileSystem(store *entity.Store) *ProjectileSystem {
	return &ProjectileSystem{store: store}
}

func (s *ProjectileSystem) Update() {
	for _, b := range s.store.Bullets {
		b.X += b.DX
		b.Y += b.DY
	}
	s.store.RemoveBullets(func(b *component.Bullet) bool {
		return !insideArena(b.X, b.Y)
	})
}
