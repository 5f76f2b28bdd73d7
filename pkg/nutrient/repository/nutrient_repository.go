package repository

import "growlog/entities"

type NutrientRepository interface {
	Create(n *entities.Nutrient) error
	FindByID(id uint) (*entities.Nutrient, error)
	List() ([]entities.Nutrient, error)
	Update(n *entities.Nutrient) error
	Delete(id uint) error
}
