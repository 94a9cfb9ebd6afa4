// internal/achievement/tracker.go
package achievement

import (
	"fmt"
	"go-robotron/internal/component"
	"go-robotron/internal/defs"
	"go-robotron/internal/event"
	"log"
	"strings"
)

// Tracker следит за счётчиками сессии и выдаёт достижения.
// Бонус достижения начисляется сразу, в том же шаге симуляции.
// Собственного состояния нет, всё берётся из сессии и события.
type Tracker struct {
	session         *component.Session
	eventDispatcher *event.Dispatcher
}

func NewTracker(session *component.Session, eventDispatcher *event.Dispatcher) *Tracker {
	t := &Tracker{session: session, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.RobotDestroyed, t)
	eventDispatcher.Subscribe(event.HumanRescued, t)
	eventDispatcher.Subscribe(event.WaveCompleted, t)
	return t
}

func (t *Tracker) OnEvent(e event.Event) {
	a := &t.session.Achievements
	var wave event.WaveCompletedData

	switch e.Type {
	case event.RobotDestroyed:
		t.checkCounter(defs.RobotsDestroyed, a.RobotsDestroyed, wave)
	case event.HumanRescued:
		t.checkCounter(defs.HumansRescued, a.HumansRescued, wave)
		t.checkCounter(defs.ConsecutiveRescues, a.ConsecutiveRescues, wave)
	case event.WaveCompleted:
		data, ok := e.Data.(event.WaveCompletedData)
		if !ok {
			return
		}
		wave = data
		t.checkWaves(a.WavesCompleted, wave)
		if data.Perfect {
			t.checkCounter(defs.PerfectWaves, a.PerfectWaves, wave)
		}
		t.checkScore(wave)
	}
}

func (t *Tracker) checkCounter(c defs.Counter, value int, wave event.WaveCompletedData) {
	for _, m := range defs.MilestonesFor(c) {
		if value == m.At {
			t.unlock(m, wave)
		}
	}
}

func (t *Tracker) checkWaves(completed int, wave event.WaveCompletedData) {
	matched := false
	for _, m := range defs.MilestonesFor(defs.WavesCompleted) {
		if completed == m.At {
			t.unlock(m, wave)
			matched = true
		}
	}
	if !matched && completed > 10 && completed%defs.RecurringWave.At == 0 {
		t.unlock(defs.RecurringWave, wave)
	}
}

// checkScore проверяется только в конце волны: порог пересечён,
// если счёт до бонусов волны был ниже него, а текущий не ниже.
func (t *Tracker) checkScore(wave event.WaveCompletedData) {
	for _, m := range defs.MilestonesFor(defs.Score) {
		if wave.ScoreBefore < m.At && t.session.Score >= m.At {
			t.unlock(m, wave)
		}
	}
}

func (t *Tracker) unlock(m defs.Milestone, wave event.WaveCompletedData) {
	t.session.Score += m.Bonus
	a := t.session.Achievements
	args := []any{wave.Survivors, wave.Bonus, t.session.Score, a.RobotsDestroyed, a.WavesCompleted, a.WavesCompleted}
	n := event.Notification{
		Title:   m.Title,
		Message: expand(m.Message, args),
		Details: expand(m.Details, args),
		Bonus:   m.Bonus,
	}
	log.Printf("Achievement unlocked: %s", n.Title)
	t.eventDispatcher.Dispatch(event.Event{Type: event.AchievementUnlocked, Data: n})
}

// expand подставляет значения только в шаблоны с плейсхолдерами.
func expand(s string, args []any) string {
	if !strings.Contains(s, "%") {
		return s
	}
	return fmt.Sprintf(s, args...)
}
