// internal/component/game_state.go
package component

// Phase — фаза игровой сессии
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Achievements — счётчики для достижений и таблицы рекордов.
type Achievements struct {
	HumansRescued         int `json:"humansRescued"`
	RobotsDestroyed       int `json:"robotsDestroyed"`
	WavesCompleted        int `json:"wavesCompleted"`
	PerfectWaves          int `json:"perfectWaves"`
	ConsecutiveRescues    int `json:"consecutiveRescues"`
	MaxConsecutiveRescues int `json:"maxConsecutiveRescues"`
}

// Rescue учитывает спасение и обновляет максимальную серию.
func (a *Achievements) Rescue() {
	a.HumansRescued++
	a.ConsecutiveRescues++
	if a.ConsecutiveRescues > a.MaxConsecutiveRescues {
		a.MaxConsecutiveRescues = a.ConsecutiveRescues
	}
}

// BreakStreak обнуляет серию спасений.
func (a *Achievements) BreakStreak() {
	a.ConsecutiveRescues = 0
}

// Session хранит состояние одной партии: очки, волну, жизни и счётчики.
// Сбрасывается только явным перезапуском.
type Session struct {
	Score        int
	Wave         int
	Lives        int
	Phase        Phase
	Tick         uint64
	Achievements Achievements
}

// NewSession создаёт сессию для первой волны.
func NewSession(lives int) *Session {
	return &Session{
		Wave:  1,
		Lives: lives,
		Phase: Playing,
	}
}

// Running сообщает, продолжается ли симуляция.
func (s *Session) Running() bool {
	return s.Phase == Playing
}
