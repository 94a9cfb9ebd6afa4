// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp ограничивает значение отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Touching проверяет касание двух квадратов по их центрам:
// расстояние меньше суммы половин размеров плюс дополнительный радиус.
func Touching(x1, y1, size1, x2, y2, size2, bonus float64) bool {
	return Distance(x1, y1, x2, y2) < size1/2+size2/2+bonus
}
