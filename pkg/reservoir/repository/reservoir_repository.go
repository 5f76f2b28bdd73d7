package repository

import "growlog/entities"

type ReservoirRepository interface {
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(fn func(r ReservoirRepository) error) error
	// FirstByLog returns nil, nil when the log has no reservoir row.
	FirstByLog(logID uint) (*entities.ReservoirLog, error)
	ListByCycle(cycleID string) ([]entities.ReservoirLog, error)
	Create(r *entities.ReservoirLog) error
	Save(r *entities.ReservoirLog) error
	DeleteByLog(logID uint) error
}
