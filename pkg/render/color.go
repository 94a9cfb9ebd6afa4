// pkg/render/color.go
package render

import (
	"go-robotron/internal/component"
	"image/color"
)

// ArenaColors holds all the colors needed to draw the play area.
type ArenaColors struct {
	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	PlayerColor     color.RGBA
	BulletColor     color.RGBA
	GruntColor      color.RGBA
	HulkColor       color.RGBA
	HumanColor      color.RGBA
	ParticleColors  map[component.ParticleColor]color.RGBA
}

// RobotColor выбирает цвет по разновидности робота.
func (c *ArenaColors) RobotColor(v component.RobotVariant) color.RGBA {
	if v == component.Hulk {
		return c.HulkColor
	}
	return c.GruntColor
}

// ParticleColor возвращает цвет метки частицы, по умолчанию жёлтый.
func (c *ArenaColors) ParticleColor(tag component.ParticleColor) color.RGBA {
	if col, ok := c.ParticleColors[tag]; ok {
		return col
	}
	return color.RGBA{0xff, 0xff, 0x00, 0xff}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales alpha (and premultiplied channels) by k in [0, 1].
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
