// internal/defs/achievements.go
package defs

// Counter — счётчик, по которому проверяется достижение.
type Counter int

const (
	RobotsDestroyed Counter = iota
	HumansRescued
	ConsecutiveRescues
	WavesCompleted
	PerfectWaves
	Score
)

// Milestone — одна строка таблицы достижений.
// Details может содержать подстановки, которые заполняет трекер.
type Milestone struct {
	Counter Counter
	At      int
	Bonus   int
	Title   string
	Message string
	Details string
}

// Milestones — фиксированная таблица порогов.
// Для WavesCompleted после 10-й волны действует общее правило "каждая 5-я".
var Milestones = []Milestone{
	{RobotsDestroyed, 50, 0, "Robot Slayer!", "50 robots destroyed!",
		"Your aim is getting deadly!\nKeep up the great work!"},
	{RobotsDestroyed, 100, 3000, "Terminator!", "100 robots eliminated!",
		"You're a robot-destroying machine!\nBonus: +3000 points"},
	{HumansRescued, 10, 2000, "Life Saver!", "10 humans rescued!",
		"You're a true hero!\nRescue Bonus: +2000 points"},
	{HumansRescued, 50, 5000, "Humanity's Champion!", "50 humans saved!",
		"Your dedication is inspiring!\nSpecial Bonus: +5000 points"},
	{ConsecutiveRescues, 5, 1500, "Rescue Streak!", "5 consecutive rescues!",
		"Amazing rescue chain!\nStreak Bonus: +1500 points"},
	{WavesCompleted, 1, 0, "First Victory!", "You completed your first wave!",
		"Humans Saved: %[1]d/8\nBonus Points: %[2]d"},
	{WavesCompleted, 5, 0, "Wave Warrior!", "5 waves completed!",
		"You're becoming a true defender!\nTotal Score: %[3]d"},
	{WavesCompleted, 10, 0, "Robotron Veteran!", "10 waves completed!",
		"Outstanding performance!\nRobots Destroyed: %[4]d"},
	{PerfectWaves, 1, 2000, "Perfect Protector!", "All humans saved in a wave!",
		"No human left behind!\nPerfect Wave Bonus: +2000 points"},
	{PerfectWaves, 3, 5000, "Guardian Angel!", "3 perfect waves completed!",
		"Your protection skills are legendary!\nSpecial Bonus: +5000 points"},
	{Score, 50000, 0, "High Scorer!", "50,000 points reached!",
		"Excellent gameplay!\nWaves Completed: %[5]d"},
	{Score, 100000, 0, "Score Legend!", "100,000 points achieved!",
		"Incredible performance!\nYou're in the hall of fame!"},
}

// RecurringWave — сообщение для каждой 5-й волны после 10-й.
var RecurringWave = Milestone{
	Counter: WavesCompleted,
	At:      5,
	Title:   "Wave Master!",
	Message: "%[6]d waves completed!",
	Details: "Keep up the excellent work!\nCurrent Score: %[3]d",
}

// MilestonesFor возвращает строки таблицы для одного счётчика.
func MilestonesFor(c Counter) []Milestone {
	var out []Milestone
	for _, m := range Milestones {
		if m.Counter == c {
			out = append(out, m)
		}
	}
	return out
}
