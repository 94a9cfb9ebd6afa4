// internal/component/projectile.go
package component

// Bullet представляет летящий снаряд игрока.
type Bullet struct {
	Position
	DX, DY float64 // Скорость за шаг
	Size   float64
}
