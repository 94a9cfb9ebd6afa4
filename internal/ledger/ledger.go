// internal/ledger/ledger.go
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/interfaces"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Ledger подходит под оба интерфейса игры.
var (
	_ interfaces.ScoreLedger = (*Ledger)(nil)
	_ interfaces.ScoreBoard  = (*Ledger)(nil)
)

// Ledger — таблица из не более чем MaxScores лучших результатов,
// отсортированная по убыванию счёта.
type Ledger struct {
	store  Store
	now    func() time.Time
	scores []interfaces.ScoreRecord
}

// New загружает таблицу из store. Испорченные или отсутствующие
// данные дают пустую таблицу.
func New(store Store) *Ledger {
	l := &Ledger{store: store, now: time.Now}
	scores, err := l.load()
	if err != nil {
		log.Printf("High scores unavailable, starting empty: %v", err)
	}
	l.scores = scores
	return l
}

func (l *Ledger) load() ([]interfaces.ScoreRecord, error) {
	data, err := l.store.Load(config.HighScoresKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var scores []interfaces.ScoreRecord
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal high scores: %w", err)
	}
	sortRecords(scores)
	if len(scores) > config.MaxScores {
		scores = scores[:config.MaxScores]
	}
	return scores, nil
}

func (l *Ledger) save() error {
	data, err := json.Marshal(l.scores)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := l.store.Save(config.HighScoresKey, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// AddScore добавляет результат. Возвращает место (1..10) и true,
// если результат остался в таблице.
func (l *Ledger) AddScore(score, wave int, a component.Achievements) (int, bool) {
	now := l.now()
	rec := interfaces.ScoreRecord{
		ID:        uuid.New(),
		Score:     score,
		Wave:      wave,
		Date:      now.UTC().Format(time.RFC3339),
		Timestamp: now.UnixMilli(),
		Achievements: interfaces.AchievementSnapshot{
			HumansRescued:         a.HumansRescued,
			RobotsDestroyed:       a.RobotsDestroyed,
			WavesCompleted:        a.WavesCompleted,
			PerfectWaves:          a.PerfectWaves,
			MaxConsecutiveRescues: a.MaxConsecutiveRescues,
		},
	}

	l.scores = append(l.scores, rec)
	sortRecords(l.scores)
	if len(l.scores) > config.MaxScores {
		l.scores = l.scores[:config.MaxScores]
	}
	if err := l.save(); err != nil {
		log.Printf("Error: %v", err)
	}

	for i, r := range l.scores {
		if r.ID == rec.ID {
			return i + 1, true
		}
	}
	return 0, false
}

// sortRecords сортирует по убыванию; при равенстве старший результат выше.
func sortRecords(scores []interfaces.ScoreRecord) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

func (l *Ledger) HighScore() int {
	if len(l.scores) == 0 {
		return 0
	}
	return l.scores[0].Score
}

func (l *Ledger) IsNewHighScore(score int) bool {
	return score > l.HighScore()
}

func (l *Ledger) IsTopTenScore(score int) bool {
	if len(l.scores) < config.MaxScores {
		return true
	}
	return score > l.scores[config.MaxScores-1].Score
}

// Scores возвращает копию таблицы.
func (l *Ledger) Scores() []interfaces.ScoreRecord {
	return append([]interfaces.ScoreRecord(nil), l.scores...)
}

func (l *Ledger) Stats() interfaces.ScoreStats {
	var s interfaces.ScoreStats
	s.TotalGames = len(l.scores)
	if s.TotalGames == 0 {
		return s
	}
	total := 0
	for _, r := range l.scores {
		total += r.Score
		s.TotalHumansRescued += r.Achievements.HumansRescued
		s.TotalRobotsDestroyed += r.Achievements.RobotsDestroyed
		s.TotalWavesCompleted += r.Achievements.WavesCompleted
		s.TotalPerfectWaves += r.Achievements.PerfectWaves
	}
	s.AverageScore = int(math.Round(float64(total) / float64(s.TotalGames)))
	return s
}

// Clear удаляет все результаты.
func (l *Ledger) Clear() {
	l.scores = nil
	if err := l.store.Remove(config.HighScoresKey); err != nil {
		log.Printf("Error: failed to clear high scores: %v", err)
	}
}

// FormatDate — короткая дата для панели рекордов.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}
