// internal/component/visual.go
package component

// ParticleColor — цветовая метка частицы, конкретный цвет выбирает рендерер.
type ParticleColor string

const (
	ParticleYellow ParticleColor = "yellow"
)

// Particle — частица взрыва с ограниченным временем жизни (в шагах).
type Particle struct {
	Position
	DX, DY float64
	Life   int
	Color  ParticleColor
}
