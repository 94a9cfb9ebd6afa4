// internal/component/input.go
package component

// Input — состояние клавиш, снятое один раз в начале шага.
type Input struct {
	Up, Down, Left, Right                 bool
	FireUp, FireDown, FireLeft, FireRight bool
}

// PauseRequested: P ставит паузу всегда, Escape только если
// не открыт диалог, для которого Escape означает отмену.
func PauseRequested(p, escape, dialogOpen bool) bool {
	return p || (escape && !dialogOpen)
}
