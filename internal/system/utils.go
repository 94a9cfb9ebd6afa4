// internal/system/utils.go
package system

import "go-robotron/internal/config"

// insideArena проверяет попадание точки в открытый прямоугольник поля.
func insideArena(x, y float64) bool {
	return x > 0 && x < config.ScreenWidth && y > 0 && y < config.ScreenHeight
}
