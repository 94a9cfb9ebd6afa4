// internal/event/types.go
package event

import "go-robotron/internal/component"

const (
	ShotFired           EventType = "ShotFired"      // Игрок выстрелил
	RobotDestroyed      EventType = "RobotDestroyed" // Робот уничтожен пулей
	HumanCaptured       EventType = "HumanCaptured"  // Робот поймал человека
	HumanRescued        EventType = "HumanRescued"   // Игрок спас человека
	PlayerHit           EventType = "PlayerHit"
	WaveCompleted       EventType = "WaveCompleted" // Волна закончилась
	GameOver            EventType = "GameOver"
	AchievementUnlocked EventType = "AchievementUnlocked"
)

// RobotDestroyedData — данные события RobotDestroyed.
type RobotDestroyedData struct {
	Variant component.RobotVariant
	X, Y    float64
	Points  int
}

// HumanData — данные событий HumanCaptured и HumanRescued.
type HumanData struct {
	X, Y float64
}

// PlayerHitData — данные события PlayerHit.
type PlayerHitData struct {
	LivesLeft int
}

// WaveCompletedData — итоги завершённой волны.
type WaveCompletedData struct {
	Wave        int // номер завершённой волны
	Survivors   int
	Bonus       int
	Perfect     bool
	ScoreBefore int // счёт до начисления бонусов волны
}

// GameOverData — финальные показатели сессии.
type GameOverData struct {
	Score        int
	Wave         int
	Achievements component.Achievements
}

// Notification — текст достижения для баннера.
type Notification struct {
	Title   string
	Message string
	Details string
	Bonus   int
}
