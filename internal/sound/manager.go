// internal/sound/manager.go
package sound

import (
	"go-robotron/internal/event"
	"log"

	"github.com/gopxl/beep"
)

// Sink воспроизводит готовый поток. Реализация не должна блокировать игру.
type Sink interface {
	Play(s beep.Streamer) error
}

// Manager включает и выключает звук и превращает события игры в сигналы.
// Без Sink звук недоступен навсегда, все вызовы становятся пустыми.
type Manager struct {
	sink      Sink
	rate      beep.SampleRate
	volume    float64
	enabled   bool
	available bool
}

func NewManager(sink Sink, rate beep.SampleRate) *Manager {
	m := &Manager{
		sink:      sink,
		rate:      rate,
		volume:    1.0,
		available: sink != nil,
	}
	m.enabled = m.available
	if !m.available {
		log.Println("Audio not supported, sound disabled")
	}
	return m
}

// Play запускает сигнал, если звук включён.
func (m *Manager) Play(cue Cue) {
	if !m.enabled {
		return
	}
	s := Build(cue, m.rate)
	if s == nil {
		return
	}
	if err := m.sink.Play(newVolume(s, m.volume)); err != nil {
		log.Printf("Error: failed to play %s: %v", cue, err)
	}
}

// Toggle переключает звук и возвращает новое состояние.
func (m *Manager) Toggle() bool {
	m.SetEnabled(!m.enabled)
	return m.enabled
}

func (m *Manager) SetEnabled(on bool) {
	m.enabled = on && m.available
}

func (m *Manager) Enabled() bool {
	return m.enabled
}

// SetVolume задаёт общую громкость в [0, 1], 0 — тишина.
func (m *Manager) SetVolume(v float64) {
	m.volume = max(0, min(1, v))
}

// Subscribe подписывает менеджер на события, у которых есть звук.
func (m *Manager) Subscribe(d *event.Dispatcher) {
	for t := range eventCues {
		d.Subscribe(t, m)
	}
}

var eventCues = map[event.EventType]Cue{
	event.ShotFired:      Shoot,
	event.RobotDestroyed: RobotDestroyed,
	event.HumanRescued:   HumanRescued,
	event.PlayerHit:      PlayerHit,
	event.WaveCompleted:  WaveComplete,
}

// OnEvent реализует интерфейс event.Listener.
func (m *Manager) OnEvent(e event.Event) {
	if cue, ok := eventCues[e.Type]; ok {
		m.Play(cue)
	}
}
