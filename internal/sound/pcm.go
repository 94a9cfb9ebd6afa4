// internal/sound/pcm.go
package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// maxCueLength ограничивает рендер, если поток никогда не кончается.
const maxCueLength = 2 // секунды

// EncodePCM вычитывает поток целиком и кодирует его в 16-битный
// стерео PCM little-endian.
func EncodePCM(s beep.Streamer, rate beep.SampleRate) []byte {
	limit := int(rate) * maxCueLength
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*int(rate)/2)

	for total := 0; total < limit; {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
