// internal/interfaces/game_context.go
package interfaces

import (
	"go-robotron/internal/component"
	"time"

	"github.com/google/uuid"
)

// ScoreLedger — то, что игре нужно от таблицы рекордов в конце партии.
type ScoreLedger interface {
	HighScore() int
	IsNewHighScore(score int) bool
	AddScore(score, wave int, achievements component.Achievements) (rank int, ok bool)
}

// ScoreBoard — то, что панели рекордов нужно для показа и очистки.
type ScoreBoard interface {
	Scores() []ScoreRecord
	Stats() ScoreStats
	Clear()
}

// AchievementSnapshot — счётчики партии на момент её окончания.
type AchievementSnapshot struct {
	HumansRescued         int `json:"humansRescued"`
	RobotsDestroyed       int `json:"robotsDestroyed"`
	WavesCompleted        int `json:"wavesCompleted"`
	PerfectWaves          int `json:"perfectWaves"`
	MaxConsecutiveRescues int `json:"maxConsecutiveRescues"`
}

// ScoreRecord — одна строка таблицы рекордов.
type ScoreRecord struct {
	ID           uuid.UUID           `json:"id"`
	Score        int                 `json:"score"`
	Wave         int                 `json:"wave"`
	Date         string              `json:"date"`      // RFC 3339
	Timestamp    int64               `json:"timestamp"` // unix ms
	Achievements AchievementSnapshot `json:"achievements"`
}

// ScoreStats — агрегаты по сохранённым партиям.
type ScoreStats struct {
	TotalGames           int
	AverageScore         int
	TotalHumansRescued   int
	TotalRobotsDestroyed int
	TotalWavesCompleted  int
	TotalPerfectWaves    int
}

// RecordTime восстанавливает время записи из Timestamp.
func (r ScoreRecord) RecordTime() time.Time {
	return time.UnixMilli(r.Timestamp)
}
