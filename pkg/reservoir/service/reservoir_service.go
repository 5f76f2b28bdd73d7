package service

import "growlog/entities"

type ReservoirService interface {
	// Upsert folds in into the log's reservoir row, creating it on first
	// write. merged reports whether an existing row absorbed the write.
	Upsert(cycleID string, logID uint, in *entities.ReservoirLog) (out *entities.ReservoirLog, merged bool, err error)
	Get(cycleID string, logID uint) (*ReservoirView, error)
	Delete(cycleID string, logID uint) error
}

type ReservoirView struct {
	entities.ReservoirLog
	PercentRo *int `json:"percent_ro"`
}
