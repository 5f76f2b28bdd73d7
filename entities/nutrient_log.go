package entities

import (
	"fmt"
	"time"
)

// NutrientLog is a dose of one nutrient applied at one log. There is at most
// one row per (log, nutrient); repeated doses accumulate into it.
type NutrientLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LogID         uint      `gorm:"not null;uniqueIndex:idx_nutrient_log_pair" json:"log_id"`
	NutrientID    uint      `gorm:"not null;uniqueIndex:idx_nutrient_log_pair" json:"nutrient_id" validate:"required"`
	Concentration int       `gorm:"not null" json:"concentration" validate:"min=0"`
	Nutrient      *Nutrient `gorm:"foreignKey:NutrientID;constraint:OnDelete:CASCADE" json:"nutrient,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (nl *NutrientLog) String() string {
	name := fmt.Sprintf("nutrient #%d", nl.NutrientID)
	if nl.Nutrient != nil {
		name = nl.Nutrient.Name
	}
	return fmt.Sprintf("%s - %d", name, nl.Concentration)
}
