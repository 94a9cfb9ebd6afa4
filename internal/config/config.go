// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Симуляция идёт фиксированными шагами по 1/60 секунды,
	// все скорости ниже заданы в пикселях за шаг.
	TickRate         = 60
	TickDuration     = 1.0 / TickRate
	MaxDeltaTime     = 0.25
	MaxStepsPerFrame = 5

	PlayerSize   = 8.0
	PlayerSpeed  = 3.0
	StartLives   = 3
	RescueRadius = 5.0 // Дополнительный радиус при спасении человека

	BulletSize  = 3.0
	BulletSpeed = 8.0
	MaxBullets  = 20

	RobotSize          = 8.0
	RobotBaseSpeed     = 1.0
	RobotSpeedPerWave  = 0.2
	RobotsBase         = 5
	RobotsPerWave      = 2
	RobotRetargetP     = 0.3 // Шанс переключиться на более близкого человека
	HumanSize          = 6.0
	HumanSpeed         = 0.5
	HumansPerWave      = 8
	HumanSpawnMargin   = 20.0
	ExplosionParticles = 8
	ParticleLife       = 20
	ParticleSpread     = 6.0

	GruntPoints       = 100
	HulkPoints        = 150
	RescuePoints      = 1000
	SurvivorBonus     = 500
	GruntSpawnPercent = 70
	HulkSpawnPercent  = 30

	MaxScores       = 10
	HighScoresKey   = "robotron2084_highscores"
	ScoresDirName   = "go-robotron"
	BannerDuration  = 2.5 // секунды
	SoundSampleRate = 44100
)

// Options — параметры запуска, заполняются из флагов командной строки.
type Options struct {
	Seed      int64  // 0 — сид от текущего времени
	ScoresDir string // пусто — каталог пользователя по умолчанию
	Mute      bool
	Volume    float64 // 0..1, общая громкость
	PprofAddr string // пусто — профилировщик выключен
}

var (
	BackgroundColor  = color.RGBA{0x00, 0x11, 0x00, 0xff}
	PlayerColor      = color.RGBA{0x00, 0xff, 0xff, 0xff}
	BulletColor      = color.RGBA{0xff, 0xff, 0x00, 0xff}
	GruntColor       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	HulkColor        = color.RGBA{0xff, 0x00, 0xff, 0xff}
	HumanColor       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ExplosionColor   = color.RGBA{0xff, 0xff, 0x00, 0xff}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextAccentColor  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	HighlightColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	PanelColor       = color.RGBA{0, 0, 0, 200}
	PanelBorderColor = color.RGBA{0x00, 0xff, 0x00, 0xff}
	BannerColor      = color.RGBA{0x10, 0x30, 0x10, 230}
)
