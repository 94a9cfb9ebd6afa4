// internal/system/movement.go
package system

import (
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/utils"
)

// RobotSystem ведёт роботов к цели: к игроку или к более близкому человеку.
type RobotSystem struct {
	store *entity.Store
	rng   *utils.PRNGService
}

func NewRobotSystem(store *entity.Store, rng *utils.PRNGService) *RobotSystem {
	return &RobotSystem{store: store, rng: rng}
}

func (s *RobotSystem) Update() {
	player := s.store.Player
	for _, robot := range s.store.Robots {
		tx, ty := player.X, player.Y
		best := utils.Distance(robot.X, robot.Y, tx, ty)

		// Более близкий человек становится целью не всегда, а с вероятностью RobotRetargetP.
		for _, h := range s.store.Humans {
			d := utils.Distance(robot.X, robot.Y, h.X, h.Y)
			if d < best && s.rng.Chance(config.RobotRetargetP) {
				tx, ty = h.X, h.Y
				best = d
			}
		}

		if best == 0 {
			continue
		}
		// Шаг не длиннее расстояния до цели, иначе робот проскочит её.
		step := min(robot.Speed, best)
		half := robot.Size / 2
		robot.X = utils.Clamp(robot.X+(tx-robot.X)/best*step, half, config.ScreenWidth-half)
		robot.Y = utils.Clamp(robot.Y+(ty-robot.Y)/best*step, half, config.ScreenHeight-half)
	}
}

// HumanSystem двигает людей по прямой с отражением от краёв поля.
type HumanSystem struct {
	store *entity.Store
}

func NewHumanSystem(store *entity.Store) *HumanSystem {
	return &HumanSystem{store: store}
}

func (s *HumanSystem) Update() {
	for _, h := range s.store.Humans {
		h.X += h.DX * h.Speed
		h.Y += h.DY * h.Speed

		half := h.Size / 2
		if h.X <= half || h.X >= config.ScreenWidth-half {
			h.DX = -h.DX
		}
		if h.Y <= half || h.Y >= config.ScreenHeight-half {
			h.DY = -h.DY
		}
		h.X = utils.Clamp(h.X, half, config.ScreenWidth-half)
		h.Y = utils.Clamp(h.Y, half, config.ScreenHeight-half)
	}
}
