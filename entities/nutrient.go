package entities

import "time"

type NutrientType string

const (
	MediumConditioner NutrientType = "medium_conditioner"
	BaseLine          NutrientType = "base_line"
	RootExpander      NutrientType = "root_expander"
	BudStrengthener   NutrientType = "bud_strengthener"
	BudEnlarger       NutrientType = "bud_enlarger"
	BudTaste          NutrientType = "bud_taste"
)

// DefaultNutrientImage is used when a nutrient is saved without a picture.
const DefaultNutrientImage = "default_fertilizer.jpg"

// NutrientTypeOrder ranks nutrient logs by the type of their nutrient; untyped last.
const NutrientTypeOrder = "CASE nutrients.nutrient_type WHEN 'medium_conditioner' THEN 1 WHEN 'base_line' THEN 2 WHEN 'root_expander' THEN 3 WHEN 'bud_strengthener' THEN 4 WHEN 'bud_enlarger' THEN 5 WHEN 'bud_taste' THEN 6 ELSE 7 END, nutrient_logs.id"

type Nutrient struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"size:80;not null" json:"name" validate:"required,max=80"`
	Brand         string        `gorm:"size:80;not null" json:"brand" validate:"required,max=80"`
	NutrientType  *NutrientType `gorm:"size:18" json:"nutrient_type" validate:"omitempty,oneof=medium_conditioner base_line root_expander bud_strengthener bud_enlarger bud_taste"`
	Detail        string        `json:"detail"`
	FeaturedImage string        `json:"featured_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Nutrient) ApplyDefaults() {
	if n.FeaturedImage == "" {
		n.FeaturedImage = DefaultNutrientImage
	}
}

func (n *Nutrient) String() string { return n.Name }
