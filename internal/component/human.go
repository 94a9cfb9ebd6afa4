// internal/component/human.go
package component

// Human — блуждающий человек, которого можно спасти.
// Направление (DX, DY) отражается от краёв поля.
type Human struct {
	Position
	Velocity
	Size float64
}
