// internal/component/player.go
package component

// Player — управляемая сущность игрока. Жизни хранятся в Session.
type Player struct {
	Position
	Size  float64
	Speed float64
}
