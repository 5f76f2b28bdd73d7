package repository

import "growlog/entities"

type LogRepository interface {
	Create(l *entities.Log) error
	FindByID(cycleID string, id uint) (*entities.Log, error)
	ListByCycle(cycleID string) ([]entities.Log, error)
	Last(cycleID string) (*entities.Log, error)
	Update(l *entities.Log) error
	Delete(cycleID string, id uint) error
	AverageVegDayTemp(cycleID string) (*float64, error)
}
