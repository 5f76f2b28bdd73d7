package entities

import "time"

type Phase string

const (
	PhaseSeedling   Phase = "seedling"
	PhaseVegetative Phase = "vegetative"
	PhaseBloom      Phase = "bloom"
)

// Rank orders phases seedling < vegetative < bloom. Unknown phases sort last.
func (p Phase) Rank() int {
	switch p {
	case PhaseSeedling:
		return 1
	case PhaseVegetative:
		return 2
	case PhaseBloom:
		return 3
	}
	return 4
}

// LogOrder is the default ordering of logs: phase rank, date, insertion order.
const LogOrder = "CASE logs.phase WHEN 'seedling' THEN 1 WHEN 'vegetative' THEN 2 WHEN 'bloom' THEN 3 ELSE 4 END, logs.date, logs.id"

// Log is one dated set of readings within a cycle.
type Log struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	CycleID string    `gorm:"size:36;not null;index" json:"cycle_id"`
	Date    time.Time `gorm:"index" json:"date"`
	Phase   Phase     `gorm:"size:12;not null" json:"phase" validate:"oneof=seedling vegetative bloom"`

	TemperatureDay   *float64 `json:"temperature_day"`
	TemperatureNight *float64 `json:"temperature_night"`
	HumidityDay      *int     `json:"humidity_day" validate:"omitempty,min=0,max=100"`
	HumidityNight    *int     `json:"humidity_night" validate:"omitempty,min=0,max=100"`
	PH               *float64 `gorm:"column:ph" json:"ph" validate:"omitempty,min=0,max=14"`
	EC               *float64 `gorm:"column:ec" json:"ec" validate:"omitempty,min=0"`
	Irrigation       *string  `gorm:"size:20" json:"irrigation" validate:"omitempty,max=20"`
	LightHeight      *int     `json:"light_height" validate:"omitempty,min=0"`
	LightPower       *int     `json:"light_power" validate:"omitempty,oneof=0 25 50 75 100"`
	CarbonDioxide    *int     `json:"carbon_dioxide" validate:"omitempty,min=0"`
	Calibration      *bool    `json:"calibration"`
	FeaturedImage    string   `json:"featured_image"`
	Comment          string   `json:"comment"`

	NutrientLogs  []NutrientLog  `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE" json:"nutrient_logs,omitempty"`
	ReservoirLogs []ReservoirLog `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE" json:"reservoir_logs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Log) ApplyDefaults() {
	if l.Date.IsZero() {
		l.Date = Today()
	}
	if l.Phase == "" {
		l.Phase = PhaseVegetative
	}
}

// Calibrated treats an unset flag as not calibrated.
func (l *Log) Calibrated() bool {
	return l.Calibration != nil && *l.Calibration
}

// CopyReadings returns a fresh log for the same cycle carrying this log's
// phase and readings. Calibration is reset and the comment left empty.
func (l *Log) CopyReadings() *Log {
	calibrated := false
	return &Log{
		CycleID:          l.CycleID,
		Phase:            l.Phase,
		TemperatureDay:   l.TemperatureDay,
		TemperatureNight: l.TemperatureNight,
		HumidityDay:      l.HumidityDay,
		HumidityNight:    l.HumidityNight,
		PH:               l.PH,
		EC:               l.EC,
		Irrigation:       l.Irrigation,
		LightHeight:      l.LightHeight,
		LightPower:       l.LightPower,
		CarbonDioxide:    l.CarbonDioxide,
		Calibration:      &calibrated,
	}
}
