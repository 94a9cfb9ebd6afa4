// internal/component/movement.go
package component

// Position — компонент позиции (центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости: направление и модуль
type Velocity struct {
	DX, DY float64
	Speed  float64
}
