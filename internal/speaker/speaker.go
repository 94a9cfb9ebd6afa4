// internal/speaker/speaker.go
package speaker

import (
	"fmt"
	"go-robotron/internal/sound"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Speaker проигрывает сигналы через аудиоконтекст ebiten.
// Каждый сигнал рендерится в PCM целиком и отдаётся отдельному плееру.
type Speaker struct {
	ctx     *audio.Context
	rate    beep.SampleRate
	players []*audio.Player
}

// New создаёт аудиоконтекст. Ошибка означает, что звука не будет.
func New(sampleRate int) (s *Speaker, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("failed to create audio context: %v", r)
		}
	}()
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Speaker{ctx: ctx, rate: beep.SampleRate(sampleRate)}, nil
}

// Play реализует sound.Sink.
func (s *Speaker) Play(st beep.Streamer) error {
	s.prune()
	pcm := sound.EncodePCM(st, s.rate)
	if len(pcm) == 0 {
		return nil
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	s.players = append(s.players, p)
	return nil
}

// prune закрывает доигравшие плееры.
func (s *Speaker) prune() {
	alive := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		_ = p.Close()
	}
	s.players = alive
}
