package ledger

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"testing"
	"time"
)

func TestEmptyLedger(t *testing.T) {
	l := New(NewMemoryStore())
	if l.HighScore() != 0 {
		t.Errorf("Expected high score 0, got %d", l.HighScore())
	}
	if !l.IsTopTenScore(0) {
		t.Errorf("Expected any score to make an empty table")
	}
	if s := l.Stats(); s.TotalGames != 0 || s.AverageScore != 0 {
		t.Errorf("Expected zero stats, got %+v", s)
	}
}

func TestAddScoreSortsAndTruncates(t *testing.T) {
	store := NewMemoryStore()
	l := New(store)
	for i := 1; i <= 12; i++ {
		l.AddScore(i*100, i, component.Achievements{})
	}

	scores := l.Scores()
	if len(scores) != config.MaxScores {
		t.Fatalf("Expected %d scores, got %d", config.MaxScores, len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1].Score < scores[i].Score {
			t.Errorf("Expected descending order at %d: %d < %d", i, scores[i-1].Score, scores[i].Score)
		}
	}
	if scores[0].Score != 1200 || scores[9].Score != 300 {
		t.Errorf("Expected 1200..300, got %d..%d", scores[0].Score, scores[9].Score)
	}

	reloaded := New(store)
	if got := reloaded.Scores(); len(got) != 10 || got[0].ID != scores[0].ID {
		t.Errorf("Expected the table to survive a reload")
	}
}

func TestAddScoreRank(t *testing.T) {
	l := New(NewMemoryStore())
	l.AddScore(500, 1, component.Achievements{})
	l.AddScore(300, 1, component.Achievements{})

	rank, ok := l.AddScore(400, 2, component.Achievements{})
	if !ok || rank != 2 {
		t.Errorf("Expected rank 2, got %d (%v)", rank, ok)
	}

	rank, ok = l.AddScore(500, 2, component.Achievements{})
	if !ok || rank != 2 {
		t.Errorf("Expected a tie to rank below the older score, got %d", rank)
	}
}

func TestScoreFallsOffTable(t *testing.T) {
	l := New(NewMemoryStore())
	for i := 0; i < 10; i++ {
		l.AddScore(1000, 1, component.Achievements{})
	}
	if l.IsTopTenScore(1000) {
		t.Errorf("Expected a tie with the 10th score not to qualify")
	}
	rank, ok := l.AddScore(10, 1, component.Achievements{})
	if ok || rank != 0 {
		t.Errorf("Expected score to drop off, got rank %d", rank)
	}
}

func TestIsNewHighScore(t *testing.T) {
	l := New(NewMemoryStore())
	l.AddScore(1000, 3, component.Achievements{})
	if l.IsNewHighScore(1000) {
		t.Errorf("Expected equal score not to be a new high score")
	}
	if !l.IsNewHighScore(1001) {
		t.Errorf("Expected 1001 to be a new high score")
	}
}

func TestRecordFields(t *testing.T) {
	l := New(NewMemoryStore())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	a := component.Achievements{HumansRescued: 4, RobotsDestroyed: 20, WavesCompleted: 2, PerfectWaves: 1, ConsecutiveRescues: 3, MaxConsecutiveRescues: 3}
	l.AddScore(4200, 3, a)

	r := l.Scores()[0]
	if r.Date != "2024-03-01T12:00:00Z" {
		t.Errorf("Expected RFC 3339 date, got %s", r.Date)
	}
	if r.Timestamp != fixed.UnixMilli() {
		t.Errorf("Expected timestamp %d, got %d", fixed.UnixMilli(), r.Timestamp)
	}
	if r.Achievements.RobotsDestroyed != 20 || r.Achievements.MaxConsecutiveRescues != 3 {
		t.Errorf("Unexpected snapshot %+v", r.Achievements)
	}
	if !r.RecordTime().Equal(fixed) {
		t.Errorf("Expected record time %v, got %v", fixed, r.RecordTime())
	}
}

func TestStats(t *testing.T) {
	l := New(NewMemoryStore())
	l.AddScore(100, 1, component.Achievements{HumansRescued: 1, RobotsDestroyed: 5, WavesCompleted: 1})
	l.AddScore(200, 2, component.Achievements{HumansRescued: 2, RobotsDestroyed: 6, PerfectWaves: 1})
	l.AddScore(201, 2, component.Achievements{})

	s := l.Stats()
	if s.TotalGames != 3 {
		t.Errorf("Expected 3 games, got %d", s.TotalGames)
	}
	if s.AverageScore != 167 {
		t.Errorf("Expected average 167, got %d", s.AverageScore)
	}
	if s.TotalHumansRescued != 3 || s.TotalRobotsDestroyed != 11 || s.TotalWavesCompleted != 1 || s.TotalPerfectWaves != 1 {
		t.Errorf("Unexpected totals %+v", s)
	}
}

func TestCorruptStorage(t *testing.T) {
	store := NewMemoryStore()
	store.Save(config.HighScoresKey, []byte("{not json"))
	l := New(store)
	if len(l.Scores()) != 0 {
		t.Errorf("Expected empty table on corrupt data")
	}
	l.AddScore(50, 1, component.Achievements{})
	if l.HighScore() != 50 {
		t.Errorf("Expected ledger usable after corrupt load")
	}
}

func TestClear(t *testing.T) {
	store := NewMemoryStore()
	l := New(store)
	l.AddScore(50, 1, component.Achievements{})
	l.Clear()
	if len(l.Scores()) != 0 {
		t.Errorf("Expected no scores after clear")
	}
	if _, err := store.Load(config.HighScoresKey); err != ErrNotFound {
		t.Errorf("Expected key removed, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := New(NewFileStore(dir))
	l.AddScore(900, 4, component.Achievements{})

	reloaded := New(NewFileStore(dir))
	if reloaded.HighScore() != 900 {
		t.Errorf("Expected 900 after reload, got %d", reloaded.HighScore())
	}

	reloaded.Clear()
	if New(NewFileStore(dir)).HighScore() != 0 {
		t.Errorf("Expected empty table after clear")
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	s := NewFileStore(t.TempDir())
	if _, err := s.Load("missing"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := s.Remove("missing"); err != nil {
		t.Errorf("Expected removing a missing key to succeed, got %v", err)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 5, 9, 7, 0, 0, time.Local)
	if got := FormatDate(d); got != "Jan 5, 2024 09:07" {
		t.Errorf("Expected Jan 5, 2024 09:07, got %s", got)
	}
}
