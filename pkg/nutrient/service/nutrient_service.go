package service

import (
	"context"

	"growlog/entities"
)

type NutrientService interface {
	Create(n *entities.Nutrient) (*entities.Nutrient, error)
	Get(id uint) (*entities.Nutrient, error)
	List() ([]entities.Nutrient, error)
	Update(id uint, p NutrientPatch) (*entities.Nutrient, error)
	SetImage(id uint, key string) (*entities.Nutrient, error)
	Delete(id uint) error
	Import(ctx context.Context, req ImportRequest) (*entities.Nutrient, error)
}

type NutrientPatch struct {
	Name         *string                `json:"name"`
	Brand        *string                `json:"brand"`
	NutrientType *entities.NutrientType `json:"nutrient_type"`
	Detail       *string                `json:"detail"`
}

func (p NutrientPatch) Apply(n *entities.Nutrient) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Brand != nil {
		n.Brand = *p.Brand
	}
	if p.NutrientType != nil {
		n.NutrientType = p.NutrientType
		if *p.NutrientType == "" {
			n.NutrientType = nil
		}
	}
	if p.Detail != nil {
		n.Detail = *p.Detail
	}
}

// ImportRequest names a product page to read a catalog entry from. Brand
// and type are not reliably on the page, so the caller supplies them.
type ImportRequest struct {
	URL          string                 `json:"url"`
	Brand        string                 `json:"brand"`
	NutrientType *entities.NutrientType `json:"nutrient_type"`
}
