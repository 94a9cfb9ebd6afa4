// internal/sound/cues.go
package sound

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue — имя звукового сигнала
type Cue string

const (
	Shoot          Cue = "shoot"
	RobotDestroyed Cue = "robotDestroyed"
	HumanRescued   Cue = "humanRescued"
	PlayerHit      Cue = "playerHit"
	WaveComplete   Cue = "waveComplete"
)

// Build собирает поток для сигнала. Неизвестный сигнал даёт nil.
func Build(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case Shoot:
		return laser(rate)
	case RobotDestroyed:
		return explosion(rate)
	case HumanRescued:
		return chord(rate, []float64{523, 659, 784}, WaveSine, 0.2, 100*time.Millisecond, 300*time.Millisecond)
	case PlayerHit:
		return damage(rate)
	case WaveComplete:
		return chord(rate, []float64{523, 659, 784, 1047}, WaveTriangle, 0.25, 150*time.Millisecond, 400*time.Millisecond)
	}
	return nil
}

// laser — короткий "пиу": пила 1000 → 300 Гц.
func laser(rate beep.SampleRate) beep.Streamer {
	d := 100 * time.Millisecond
	return tone(Sweep(1000, 300, d, RampExponential), WaveSaw, 0.3, 0, d, rate)
}

// explosion — пила 200 → 50 Гц через закрывающийся фильтр.
func explosion(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	boom := tone(Sweep(200, 50, d, RampExponential), WaveSaw, 0.4, 0, d, rate)
	return NewLowpass(boom, Sweep(2000, 100, d, RampExponential), rate)
}

// damage — квадратная волна с "дрожащей" частотой.
func damage(rate beep.SampleRate) beep.Streamer {
	freq := Curve{
		Points: []Point{
			{0, 150},
			{100 * time.Millisecond, 100},
			{200 * time.Millisecond, 200},
			{400 * time.Millisecond, 80},
		},
		Ramp: RampLinear,
	}
	return tone(freq, WaveSquare, 0.3, 0, 400*time.Millisecond, rate)
}

// chord — ноты, вступающие одна за другой с шагом step.
func chord(rate beep.SampleRate, freqs []float64, wave WaveType, peak float64, step, d time.Duration) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(Constant(f), wave, peak, time.Duration(i)*step, d, rate)
	}
	return beep.Mix(notes...)
}
