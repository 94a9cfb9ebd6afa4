// internal/ui/text.go
package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawCentered рисует строки текста, центрируя каждую по cx.
// y — верх первой строки. Возвращает y под последней строкой.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) int {
	lineHeight := face.Metrics().Height.Ceil()
	for _, line := range strings.Split(s, "\n") {
		bounds := text.BoundString(face, line)
		x := cx - bounds.Dx()/2
		text.Draw(screen, line, face, x, y+face.Metrics().Ascent.Ceil(), clr)
		y += lineHeight
	}
	return y
}

// drawLeft рисует строку с левым краем в x, y — верх строки.
func drawLeft(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// drawRight рисует строку с правым краем в x.
func drawRight(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx(), y+face.Metrics().Ascent.Ceil(), clr)
}

// formatThousands вставляет запятые между разрядами: 12345 → 12,345.
func formatThousands(n int) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
