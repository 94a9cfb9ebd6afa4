// internal/component/enemy.go
package component

// RobotVariant — разновидность робота, влияет только на очки и цвет.
type RobotVariant string

const (
	Grunt RobotVariant = "grunt"
	Hulk  RobotVariant = "hulk"
)

// Robot представляет вражескую сущность.
type Robot struct {
	Position
	Size    float64
	Speed   float64
	Health  int
	Variant RobotVariant
}
