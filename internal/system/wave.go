// internal/system/wave.go
package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/defs"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"go-robotron/internal/utils"
	"log"
)

// WaveSystem завершает волну, когда роботов не осталось, и запускает следующую.
type WaveSystem struct {
	store           *entity.Store
	session         *component.Session
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(store *entity.Store, session *component.Session, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		store:           store,
		session:         session,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update() {
	if len(s.store.Robots) > 0 {
		return
	}

	completed := s.session.Wave
	survivors := len(s.store.Humans)
	bonus := survivors * config.SurvivorBonus
	perfect := survivors == config.HumansPerWave
	scoreBefore := s.session.Score

	s.session.Wave++
	s.session.Score += bonus
	s.session.Achievements.WavesCompleted++
	if perfect {
		s.session.Achievements.PerfectWaves++
	}

	log.Printf("Wave %d completed: %d survivors, bonus %d", completed, survivors, bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveCompletedData{
			Wave:        completed,
			Survivors:   survivors,
			Bonus:       bonus,
			Perfect:     perfect,
			ScoreBefore: scoreBefore,
		},
	})

	s.StartWave(s.session.Wave)
}

// StartWave очищает поле и расставляет людей и роботов для волны number.
func (s *WaveSystem) StartWave(number int) {
	waveDef := defs.WaveFor(number)
	s.store.ClearWave()

	for i := 0; i < waveDef.HumanCount; i++ {
		s.store.AddHuman(&component.Human{
			Position: component.Position{
				X: s.rng.Range(config.HumanSpawnMargin, config.ScreenWidth-config.HumanSpawnMargin),
				Y: s.rng.Range(config.HumanSpawnMargin, config.ScreenHeight-config.HumanSpawnMargin),
			},
			Velocity: component.Velocity{
				DX:    s.rng.Range(-1, 1),
				DY:    s.rng.Range(-1, 1),
				Speed: config.HumanSpeed,
			},
			Size: config.HumanSize,
		})
	}

	for i := 0; i < waveDef.RobotCount; i++ {
		robotDef := s.rng.ChooseWeighted(defs.RobotLibrary)
		s.store.AddRobot(&component.Robot{
			Position: component.Position{
				X: s.rng.Range(config.RobotSize/2, config.ScreenWidth-config.RobotSize/2),
				Y: s.rng.Range(config.RobotSize/2, config.ScreenHeight-config.RobotSize/2),
			},
			Size:    config.RobotSize,
			Speed:   waveDef.RobotSpeed,
			Health:  1,
			Variant: robotDef.Variant,
		})
	}
}
