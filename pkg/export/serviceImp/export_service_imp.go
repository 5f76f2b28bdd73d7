package serviceImp

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"growlog/entities"
	cyclerepo "growlog/pkg/cycle/repository"
	logsvc "growlog/pkg/dailylog/service"
	"growlog/pkg/derived"
	"growlog/pkg/export"
	"growlog/pkg/export/service"
	feedrepo "growlog/pkg/feeding/repository"
	resrepo "growlog/pkg/reservoir/repository"
)

type exportSvc struct {
	cycles    cyclerepo.CycleRepository
	logs      logsvc.LogService
	feeding   feedrepo.FeedingRepository
	reservoir resrepo.ReservoirRepository
}

func NewExportService(
	cycles cyclerepo.CycleRepository,
	logs logsvc.LogService,
	feeding feedrepo.FeedingRepository,
	reservoir resrepo.ReservoirRepository,
) service.ExportService {
	return &exportSvc{cycles: cycles, logs: logs, feeding: feeding, reservoir: reservoir}
}

func (s *exportSvc) Workbook(cycleID string, w io.Writer) (string, error) {
	c, err := s.cycles.FindByID(cycleID)
	if err != nil {
		return "", err
	}
	views, err := s.logs.ListByCycle(cycleID)
	if err != nil {
		return "", err
	}
	byID := make(map[uint]logsvc.LogView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}

	resRows, err := s.reservoir.ListByCycle(cycleID)
	if err != nil {
		return "", err
	}
	resByLog := make(map[uint]*entities.ReservoirLog, len(resRows))
	data := export.CycleData{Cycle: c, Logs: views}
	for i := range resRows {
		r := &resRows[i]
		resByLog[r.LogID] = r
		v := byID[r.LogID]
		data.Reservoir = append(data.Reservoir, export.ReservoirRow{
			LogLabel:       v.Label,
			Date:           v.Date.Format("2006-01-02"),
			Status:         r.Status,
			ReverseOsmosis: r.ReverseOsmosis,
			Water:          r.Water,
			WasteWater:     r.WasteWater,
			RoAmount:       r.RoAmount,
			PercentRo:      derived.PercentRoRatio(r),
		})
	}

	feedRows, err := s.feeding.ListByCycle(cycleID)
	if err != nil {
		return "", err
	}
	for _, nl := range feedRows {
		v := byID[nl.LogID]
		row := export.FeedingRow{
			LogLabel:      v.Label,
			Date:          v.Date.Format("2006-01-02"),
			Concentration: nl.Concentration,
			UsagePerLiter: derived.NutrientUsagePerLiter(nl.Concentration, resByLog[nl.LogID]),
		}
		if n := nl.Nutrient; n != nil {
			row.Nutrient, row.Brand = n.Name, n.Brand
			if n.NutrientType != nil {
				row.NutrientType = string(*n.NutrientType)
			}
		}
		data.Feeding = append(data.Feeding, row)
	}

	if err := export.Write(w, data); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}
	return filename(c), nil
}

var unsafeRX = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func filename(c *entities.Cycle) string {
	name := strings.Trim(unsafeRX.ReplaceAllString(c.Label(), "_"), "_")
	if name == "" {
		name = "cycle"
	}
	return name + ".xlsx"
}
