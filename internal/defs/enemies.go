// internal/defs/enemies.go
package defs

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
)

// RobotDefinition holds the static data for one robot variant.
type RobotDefinition struct {
	Variant component.RobotVariant `json:"variant"`
	Weight  int                    `json:"weight"` // relative spawn chance
	Points  int                    `json:"points"`
}

// RobotLibrary lists every robot variant with its spawn weight.
var RobotLibrary = []RobotDefinition{
	{Variant: component.Grunt, Weight: config.GruntSpawnPercent, Points: config.GruntPoints},
	{Variant: component.Hulk, Weight: config.HulkSpawnPercent, Points: config.HulkPoints},
}

// PointsFor returns the score for destroying a robot of the given variant.
func PointsFor(variant component.RobotVariant) int {
	for _, def := range RobotLibrary {
		if def.Variant == variant {
			return def.Points
		}
	}
	return config.GruntPoints
}
