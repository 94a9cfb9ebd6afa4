// internal/sound/synth.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Ramp — способ перехода между точками кривой
type Ramp int

const (
	RampExponential Ramp = iota
	RampLinear
)

// Point — значение параметра в момент At от начала звука.
type Point struct {
	At    time.Duration
	Value float64
}

// Curve — кусочная кривая параметра во времени.
type Curve struct {
	Points []Point
	Ramp   Ramp
}

// Constant — кривая с одним значением.
func Constant(v float64) Curve {
	return Curve{Points: []Point{{0, v}}}
}

// Sweep — переход от from к to за d.
func Sweep(from, to float64, d time.Duration, ramp Ramp) Curve {
	return Curve{Points: []Point{{0, from}, {d, to}}, Ramp: ramp}
}

// ValueAt возвращает значение кривой в момент t.
func (c Curve) ValueAt(t time.Duration) float64 {
	if len(c.Points) == 0 {
		return 0
	}
	if t <= c.Points[0].At {
		return c.Points[0].Value
	}
	for i := 1; i < len(c.Points); i++ {
		a, b := c.Points[i-1], c.Points[i]
		if t > b.At {
			continue
		}
		k := float64(t-a.At) / float64(b.At-a.At)
		if c.Ramp == RampExponential && a.Value > 0 && b.Value > 0 {
			return a.Value * math.Pow(b.Value/a.Value, k)
		}
		return a.Value + (b.Value-a.Value)*k
	}
	return c.Points[len(c.Points)-1].Value
}

// oscillator генерирует волну с частотой, меняющейся по кривой.
// Длина не ограничена, обрезается через beep.Take.
type oscillator struct {
	freq     Curve
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	position int
}

func NewOscillator(freq Curve, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		f := o.freq.ValueAt(o.rate.D(o.position))
		o.phase += f / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gain умножает поток на огибающую громкости.
type gain struct {
	streamer beep.Streamer
	curve    Curve
	rate     beep.SampleRate
	position int
}

func NewGain(s beep.Streamer, curve Curve, rate beep.SampleRate) beep.Streamer {
	return &gain{streamer: s, curve: curve, rate: rate}
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		v := g.curve.ValueAt(g.rate.D(g.position))
		samples[i][0] *= v
		samples[i][1] *= v
		g.position++
	}
	return n, ok
}

func (g *gain) Err() error { return g.streamer.Err() }

// lowpass — однополюсный фильтр нижних частот с плавающей частотой среза.
type lowpass struct {
	streamer beep.Streamer
	cutoff   Curve
	rate     beep.SampleRate
	position int
	prev     [2]float64
}

func NewLowpass(s beep.Streamer, cutoff Curve, rate beep.SampleRate) beep.Streamer {
	return &lowpass{streamer: s, cutoff: cutoff, rate: rate}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		fc := l.cutoff.ValueAt(l.rate.D(l.position))
		alpha := 1 - math.Exp(-2*math.Pi*fc/float64(l.rate))
		for c := 0; c < 2; c++ {
			l.prev[c] += alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
		l.position++
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// tone — одна нота: осциллятор, огибающая, длительность и задержка старта.
func tone(freq Curve, wave WaveType, peak float64, delay, d time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := beep.Take(rate.N(d), NewOscillator(freq, wave, rate))
	shaped := NewGain(osc, Sweep(peak, 0.01, d, RampExponential), rate)
	if delay <= 0 {
		return shaped
	}
	return beep.Seq(beep.Silence(rate.N(delay)), shaped)
}

// newVolume — громкость через effects.Volume; 0 даёт тишину.
// math.Log2(0) = -Inf, поэтому ноль обрабатывается отдельно.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
