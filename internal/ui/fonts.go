// internal/ui/fonts.go
package ui

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — шрифты интерфейса.
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Large   font.Face
}

// LoadFonts собирает шрифты из встроенного Go Regular.
// При ошибке все начертания заменяются растровым basicfont.
func LoadFonts() *Fonts {
	fonts, err := loadOpenType()
	if err != nil {
		log.Printf("Falling back to basic font: %v", err)
		return &Fonts{
			Regular: basicfont.Face7x13,
			Title:   basicfont.Face7x13,
			Large:   basicfont.Face7x13,
		}
	}
	return fonts
}

func loadOpenType() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	regular, err := face(14)
	if err != nil {
		return nil, fmt.Errorf("failed to create regular face: %w", err)
	}
	title, err := face(20)
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	large, err := face(32)
	if err != nil {
		return nil, fmt.Errorf("failed to create large face: %w", err)
	}
	return &Fonts{Regular: regular, Title: title, Large: large}, nil
}
