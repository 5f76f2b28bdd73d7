// Package export writes a cycle's records as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"growlog/entities"
	logsvc "growlog/pkg/dailylog/service"
)

const (
	SheetLogs      = "Logs"
	SheetFeeding   = "Feeding"
	SheetReservoir = "Reservoir"
)

const dateLayout = "2006-01-02"

// CycleData is everything one workbook shows.
type CycleData struct {
	Cycle     *entities.Cycle
	Logs      []logsvc.LogView
	Feeding   []FeedingRow
	Reservoir []ReservoirRow
}

type FeedingRow struct {
	LogLabel      string
	Date          string
	Nutrient      string
	Brand         string
	NutrientType  string
	Concentration int
	UsagePerLiter *float64
}

type ReservoirRow struct {
	LogLabel       string
	Date           string
	Status         entities.ReservoirStatus
	ReverseOsmosis entities.ReverseOsmosis
	Water          int
	WasteWater     *int
	RoAmount       *int
	PercentRo      *int
}

var (
	logHeader = []any{"Label", "Date", "Phase", "Day in cycle", "Day in phase", "Calibration streak",
		"Temp day", "Temp night", "Humidity day", "Humidity night", "pH", "EC",
		"Irrigation", "Light height", "Light power", "CO2", "Calibrated", "Comment"}
	feedingHeader   = []any{"Log", "Date", "Nutrient", "Brand", "Type", "Concentration", "Usage per liter"}
	reservoirHeader = []any{"Log", "Date", "Status", "Reverse osmosis", "Water", "Waste water", "RO amount", "RO %"}
)

// Write renders d as a workbook with Logs, Feeding and Reservoir sheets.
func Write(w io.Writer, d CycleData) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetLogs); err != nil {
		return err
	}
	for _, s := range []string{SheetFeeding, SheetReservoir} {
		if _, err := x.NewSheet(s); err != nil {
			return err
		}
	}

	rows := [][]any{logHeader}
	for _, l := range d.Logs {
		rows = append(rows, []any{
			l.Label, l.Date.Format(dateLayout), string(l.Phase), val(l.DayInCycle), l.DayInPhase, val(l.CalibrationStreak),
			val(l.TemperatureDay), val(l.TemperatureNight), val(l.HumidityDay), val(l.HumidityNight), val(l.PH), val(l.EC),
			val(l.Irrigation), val(l.LightHeight), val(l.LightPower), val(l.CarbonDioxide), l.Calibrated(), l.Comment,
		})
	}
	if err := writeRows(x, SheetLogs, rows); err != nil {
		return err
	}

	rows = [][]any{feedingHeader}
	for _, f := range d.Feeding {
		rows = append(rows, []any{f.LogLabel, f.Date, f.Nutrient, f.Brand, f.NutrientType, f.Concentration, val(f.UsagePerLiter)})
	}
	if err := writeRows(x, SheetFeeding, rows); err != nil {
		return err
	}

	rows = [][]any{reservoirHeader}
	for _, r := range d.Reservoir {
		rows = append(rows, []any{r.LogLabel, r.Date, string(r.Status), string(r.ReverseOsmosis), r.Water, val(r.WasteWater), val(r.RoAmount), val(r.PercentRo)})
	}
	if err := writeRows(x, SheetReservoir, rows); err != nil {
		return err
	}

	x.SetActiveSheet(0)
	return x.Write(w)
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// val turns an unset reading into an empty cell.
func val[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
