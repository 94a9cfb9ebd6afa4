// internal/defs/waves.go
package defs

import "go-robotron/internal/config"

// WaveDefinition описывает параметры для одной волны.
type WaveDefinition struct {
	Number     int
	RobotCount int     // 5 + 2 × номер волны
	RobotSpeed float64 // 1 + 0.2 × номер волны
	HumanCount int
}

// WaveFor вычисляет параметры волны по её номеру.
func WaveFor(number int) WaveDefinition {
	return WaveDefinition{
		Number:     number,
		RobotCount: config.RobotsBase + config.RobotsPerWave*number,
		RobotSpeed: config.RobotBaseSpeed + config.RobotSpeedPerWave*float64(number),
		HumanCount: config.HumansPerWave,
	}
}
