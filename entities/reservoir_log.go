package entities

import "time"

type ReservoirStatus string

const (
	StatusRefresh ReservoirStatus = "refresh"
	StatusRefill  ReservoirStatus = "refill"
)

type ReverseOsmosis string

const (
	ROYes ReverseOsmosis = "yes"
	RONo  ReverseOsmosis = "no"
)

// ReservoirLog records water handling at one log. Status and RoAmount are
// computed on save and never taken from user input.
type ReservoirLog struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	LogID          uint            `gorm:"not null;uniqueIndex" json:"log_id"`
	Status         ReservoirStatus `gorm:"size:7;not null" json:"status"`
	ReverseOsmosis ReverseOsmosis  `gorm:"size:3;not null" json:"reverse_osmosis" validate:"oneof=yes no"`
	Water          int             `gorm:"not null" json:"water" validate:"min=0"`
	WasteWater     *int            `json:"waste_water" validate:"omitempty,min=0"`
	RoAmount       *int            `json:"ro_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ReservoirLog) ApplyDefaults() {
	if r.ReverseOsmosis == "" {
		r.ReverseOsmosis = ROYes
	}
	if r.Status == "" {
		r.Status = StatusRefill
	}
}
