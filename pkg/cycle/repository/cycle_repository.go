package repository

import "growlog/entities"

type CycleRepository interface {
	Create(c *entities.Cycle) error
	FindByID(id string) (*entities.Cycle, error)
	List() ([]entities.Cycle, error)
	Update(c *entities.Cycle) error
	Delete(id string) error
}
