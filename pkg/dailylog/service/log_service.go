package service

import "growlog/entities"

type LogService interface {
	Create(cycleID string, l *entities.Log) (*entities.Log, error)
	CreateFromPrevious(cycleID string) (*entities.Log, error)
	Get(cycleID string, logID uint) (*LogView, error)
	ListByCycle(cycleID string) ([]LogView, error)
	Update(cycleID string, logID uint, p LogPatch) (*entities.Log, error)
	SetImage(cycleID string, logID uint, key string) (*entities.Log, error)
	Delete(cycleID string, logID uint) error
}

// LogView is a log annotated with its derived figures for display.
type LogView struct {
	entities.Log
	Label             string `json:"label"`
	DayInCycle        *int   `json:"day_in_cycle"`
	DayInPhase        int    `json:"day_in_phase"`
	PreviousLogID     *uint  `json:"previous_log_id"`
	CalibrationStreak *int   `json:"calibration_streak"`
}

// LogPatch carries the editable fields. Pointer fields left nil are
// unchanged; Optional readings can also be cleared with an explicit null.
type LogPatch struct {
	Date             *string                    `json:"date"`
	Phase            *entities.Phase            `json:"phase"`
	TemperatureDay   entities.Optional[float64] `json:"temperature_day"`
	TemperatureNight entities.Optional[float64] `json:"temperature_night"`
	HumidityDay      entities.Optional[int]     `json:"humidity_day"`
	HumidityNight    entities.Optional[int]     `json:"humidity_night"`
	PH               entities.Optional[float64] `json:"ph"`
	EC               entities.Optional[float64] `json:"ec"`
	Irrigation       entities.Optional[string]  `json:"irrigation"`
	LightHeight      entities.Optional[int]     `json:"light_height"`
	LightPower       entities.Optional[int]     `json:"light_power"`
	CarbonDioxide    entities.Optional[int]     `json:"carbon_dioxide"`
	Calibration      entities.Optional[bool]    `json:"calibration"`
	Comment          *string                    `json:"comment"`
}

// Apply copies the present fields onto l.
func (p LogPatch) Apply(l *entities.Log) error {
	if p.Date != nil && *p.Date != "" {
		d, err := entities.ParseDate(*p.Date)
		if err != nil {
			return err
		}
		l.Date = d
	}
	if p.Phase != nil {
		l.Phase = *p.Phase
	}
	p.TemperatureDay.AssignTo(&l.TemperatureDay)
	p.TemperatureNight.AssignTo(&l.TemperatureNight)
	p.HumidityDay.AssignTo(&l.HumidityDay)
	p.HumidityNight.AssignTo(&l.HumidityNight)
	p.PH.AssignTo(&l.PH)
	p.EC.AssignTo(&l.EC)
	p.Irrigation.AssignTo(&l.Irrigation)
	p.LightHeight.AssignTo(&l.LightHeight)
	p.LightPower.AssignTo(&l.LightPower)
	p.CarbonDioxide.AssignTo(&l.CarbonDioxide)
	p.Calibration.AssignTo(&l.Calibration)
	if p.Comment != nil {
		l.Comment = *p.Comment
	}
	return nil
}
