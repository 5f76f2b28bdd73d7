package repository

import "growlog/entities"

type FeedingRepository interface {
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(fn func(r FeedingRepository) error) error
	FindByPair(logID, nutrientID uint) ([]entities.NutrientLog, error)
	Create(nl *entities.NutrientLog) error
	DeleteIDs(ids []uint) error
	FindByID(logID, id uint) (*entities.NutrientLog, error)
	// ListByLog orders by nutrient type rank and preloads the nutrient.
	ListByLog(logID uint) ([]entities.NutrientLog, error)
	ListByCycle(cycleID string) ([]entities.NutrientLog, error)
	Delete(logID, id uint) error
}
