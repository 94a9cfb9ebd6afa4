// internal/ui/banner.go
package ui

import (
	"go-robotron/internal/config"
	"go-robotron/internal/event"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	bannerWidth  = 420
	bannerHeight = 150
)

// Banner показывает последнее достижение. Новое заменяет текущее,
// баннер скрывается через BannerDuration секунд или по клику.
type Banner struct {
	fonts     *Fonts
	current   *event.Notification
	remaining float64
	rect      image.Rectangle
}

func NewBanner(fonts *Fonts) *Banner {
	x := (config.ScreenWidth - bannerWidth) / 2
	y := config.ScreenHeight/2 - bannerHeight - 40
	return &Banner{
		fonts: fonts,
		rect:  image.Rect(x, y, x+bannerWidth, y+bannerHeight),
	}
}

// OnEvent реализует интерфейс event.Listener.
func (b *Banner) OnEvent(e event.Event) {
	if e.Type != event.AchievementUnlocked {
		return
	}
	if n, ok := e.Data.(event.Notification); ok {
		b.Show(n)
	}
}

func (b *Banner) Show(n event.Notification) {
	b.current = &n
	b.remaining = config.BannerDuration
}

func (b *Banner) Dismiss() {
	b.current = nil
	b.remaining = 0
}

func (b *Banner) Visible() bool {
	return b.current != nil
}

// Update отсчитывает время показа. Клик в любом месте закрывает баннер.
func (b *Banner) Update(deltaTime float64) {
	if b.current == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.Dismiss()
		return
	}
	b.remaining -= deltaTime
	if b.remaining <= 0 {
		b.Dismiss()
	}
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if b.current == nil {
		return
	}
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.BannerColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.HighlightColor, true)

	cx := r.Min.X + r.Dx()/2
	y := r.Min.Y + 14
	y = drawCentered(screen, b.current.Title, b.fonts.Title, cx, y, config.HighlightColor)
	y = drawCentered(screen, b.current.Message, b.fonts.Regular, cx, y+6, config.TextLightColor)
	drawCentered(screen, b.current.Details, b.fonts.Regular, cx, y+8, config.TextAccentColor)
}
