package service

import "growlog/entities"

type FeedingService interface {
	// Upsert adds concentration to the (log, nutrient) row, creating it on
	// first write. merged reports whether earlier doses were folded in.
	Upsert(cycleID string, logID, nutrientID uint, concentration int) (out *entities.NutrientLog, merged bool, err error)
	ListByLog(cycleID string, logID uint) ([]Entry, error)
	Delete(cycleID string, logID, id uint) error
}

// Entry is a feeding row with its usage per liter of reservoir water.
type Entry struct {
	entities.NutrientLog
	Label         string   `json:"label"`
	UsagePerLiter *float64 `json:"usage_per_liter"`
}
