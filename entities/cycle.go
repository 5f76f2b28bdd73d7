package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReproductiveCycle string

const (
	AutoFlowering ReproductiveCycle = "auto-flowering"
	Photoperiodic ReproductiveCycle = "photoperiodic"
)

type SeedType string

const (
	SeedRegular   SeedType = "regular"
	SeedFeminized SeedType = "feminized"
	SeedClones    SeedType = "clones"
)

type LightType string

const (
	LightLED LightType = "led"
	LightHPS LightType = "hps"
	LightCFL LightType = "cfl"
	LightHID LightType = "hid"
	LightCMH LightType = "cmh"
)

type GrowMedium string

const (
	MediumSoil        GrowMedium = "soil"
	MediumCoco        GrowMedium = "coco"
	MediumHydro       GrowMedium = "hydro"
	MediumRockwool    GrowMedium = "rockwool"
	MediumPerlite     GrowMedium = "perlite"
	MediumClayPebbles GrowMedium = "clay_pebbles"
)

type HydroSystem string

const (
	HydroDWC          HydroSystem = "dwc"
	HydroRDWC         HydroSystem = "rdwc"
	HydroDrip         HydroSystem = "drip"
	HydroRDrip        HydroSystem = "rdrip"
	HydroNFT          HydroSystem = "nft"
	HydroEbbAndFlow   HydroSystem = "ebb_and_flow"
	HydroFloodDrain   HydroSystem = "flood_and_drain"
	HydroAeroponics   HydroSystem = "aeroponics"
	HydroAquaponics   HydroSystem = "aquaponics"
	HydroKratky       HydroSystem = "kratky_method"
	HydroVerticalFarm HydroSystem = "vertical_farming"
)

// Cycle is one complete grow run. It owns its logs.
type Cycle struct {
	ID                string            `gorm:"primaryKey;size:36" json:"id"`
	Date              time.Time         `json:"date"`
	Name              string            `gorm:"size:150" json:"name" validate:"max=150"`
	Genetics          string            `gorm:"size:150;not null" json:"genetics" validate:"required,max=150"`
	Seedbank          string            `gorm:"size:80" json:"seedbank" validate:"max=80"`
	Fixture           string            `gorm:"size:80;not null" json:"fixture" validate:"required,max=80"`
	ReproductiveCycle ReproductiveCycle `gorm:"size:30" json:"reproductive_cycle" validate:"oneof=auto-flowering photoperiodic"`
	SeedType          SeedType          `gorm:"size:30" json:"seed_type" validate:"oneof=regular feminized clones"`
	LightType         LightType         `gorm:"size:32" json:"light_type" validate:"oneof=led hps cfl hid cmh"`
	GrowMedium        GrowMedium        `gorm:"size:30" json:"grow_medium" validate:"omitempty,oneof=soil coco hydro rockwool perlite clay_pebbles"`
	HydroSystem       HydroSystem       `gorm:"size:37" json:"hydro_system" validate:"omitempty,oneof=dwc rdwc drip rdrip nft ebb_and_flow flood_and_drain aeroponics aquaponics kratky_method vertical_farming"`
	Comment           string            `json:"comment"`

	Logs []Log `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"logs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyDefaults fills the id, date and enumerations left blank by the caller.
func (c *Cycle) ApplyDefaults() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Date.IsZero() {
		c.Date = Today()
	}
	if c.ReproductiveCycle == "" {
		c.ReproductiveCycle = Photoperiodic
	}
	if c.SeedType == "" {
		c.SeedType = SeedFeminized
	}
	if c.LightType == "" {
		c.LightType = LightLED
	}
}

// DisplayName falls back to genetics when the name is empty.
func (c *Cycle) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Genetics
}

// Label renders "name - Qn/yyyy", or "genetics - Qn/yyyy" for unnamed cycles.
// The quarter token is not repeated when the name already carries it.
func (c *Cycle) Label() string {
	quarter := (int(c.Date.Month())-1)/3 + 1
	token := fmt.Sprintf(" - Q%d", quarter)
	if c.Name == "" {
		return fmt.Sprintf("%s%s/%d", c.Genetics, token, c.Date.Year())
	}
	label := c.Name
	if !strings.Contains(label, token) {
		label += token
	}
	return fmt.Sprintf("%s/%d", label, c.Date.Year())
}

// Today is the current calendar date in the configured local zone (TZ),
// stored as midnight UTC like dates parsed from requests.
func Today() time.Time { return DateOf(time.Now()) }

// DateOf keeps t's calendar date in t's own zone and drops the clock.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
