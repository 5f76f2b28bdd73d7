package service

import "growlog/entities"

type CycleService interface {
	Create(c *entities.Cycle) (*entities.Cycle, error)
	Get(id string) (*entities.Cycle, error)
	List() ([]entities.Cycle, error)
	Update(id string, p CyclePatch) (*entities.Cycle, error)
	Delete(id string) error
	Summary(id string) (*Summary, error)
}

// CyclePatch carries the editable fields; nil leaves a field unchanged.
type CyclePatch struct {
	Date              *string                     `json:"date"`
	Name              *string                     `json:"name"`
	Genetics          *string                     `json:"genetics"`
	Seedbank          *string                     `json:"seedbank"`
	Fixture           *string                     `json:"fixture"`
	ReproductiveCycle *entities.ReproductiveCycle `json:"reproductive_cycle"`
	SeedType          *entities.SeedType          `json:"seed_type"`
	LightType         *entities.LightType         `json:"light_type"`
	GrowMedium        *entities.GrowMedium        `json:"grow_medium"`
	HydroSystem       *entities.HydroSystem       `json:"hydro_system"`
	Comment           *string                     `json:"comment"`
}

// Apply copies the set fields onto c. An empty date is left unchanged.
func (p CyclePatch) Apply(c *entities.Cycle) error {
	if p.Date != nil && *p.Date != "" {
		d, err := entities.ParseDate(*p.Date)
		if err != nil {
			return err
		}
		c.Date = d
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Genetics != nil {
		c.Genetics = *p.Genetics
	}
	if p.Seedbank != nil {
		c.Seedbank = *p.Seedbank
	}
	if p.Fixture != nil {
		c.Fixture = *p.Fixture
	}
	if p.ReproductiveCycle != nil {
		c.ReproductiveCycle = *p.ReproductiveCycle
	}
	if p.SeedType != nil {
		c.SeedType = *p.SeedType
	}
	if p.LightType != nil {
		c.LightType = *p.LightType
	}
	if p.GrowMedium != nil {
		c.GrowMedium = *p.GrowMedium
	}
	if p.HydroSystem != nil {
		c.HydroSystem = *p.HydroSystem
	}
	if p.Comment != nil {
		c.Comment = *p.Comment
	}
	return nil
}

// Summary is the phase summary of a cycle.
type Summary struct {
	Cycle         *entities.Cycle `json:"cycle"`
	Label         string          `json:"label"`
	AvgVegDayTemp *float64        `json:"avg_veg_day_temp"`
}
