package serviceImp

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"growlog/database"
	"growlog/entities"
	"growlog/pkg/apperr"
	cyclerepo "growlog/pkg/cycle/repositoryImp"
	logrepo "growlog/pkg/dailylog/repositoryImp"
	logsvc "growlog/pkg/dailylog/serviceImp"
	"growlog/pkg/export"
	feedrepo "growlog/pkg/feeding/repositoryImp"
	resrepo "growlog/pkg/reservoir/repositoryImp"
)

func TestWorkbook(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	cycles, logs := cyclerepo.New(db), logrepo.New(db)
	s := NewExportService(cycles, logsvc.NewLogService(logs, cycles), feedrepo.New(db), resrepo.New(db))

	c := &entities.Cycle{Name: "Cycle 1 - Q1", Genetics: "G", Fixture: "F", Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)}
	c.ApplyDefaults()
	require.NoError(t, cycles.Create(c))
	temp := 24.0
	l := &entities.Log{CycleID: c.ID, Date: time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), TemperatureDay: &temp}
	l.ApplyDefaults()
	require.NoError(t, logs.Create(l))
	base := entities.BaseLine
	n := &entities.Nutrient{Name: "Bloom A", Brand: "Acme", NutrientType: &base}
	require.NoError(t, db.Create(n).Error)
	require.NoError(t, db.Omit("Nutrient").Create(&entities.NutrientLog{LogID: l.ID, NutrientID: n.ID, Concentration: 10}).Error)
	ro := 4
	require.NoError(t, db.Create(&entities.ReservoirLog{LogID: l.ID, Water: 4, RoAmount: &ro, Status: entities.StatusRefill, ReverseOsmosis: entities.ROYes}).Error)

	var buf bytes.Buffer
	name, err := s.Workbook(c.ID, &buf)
	require.NoError(t, err)
	assert.Equal(t, "Cycle_1_-_Q1_2023.xlsx", name)

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()
	assert.Equal(t, []string{export.SheetLogs, export.SheetFeeding, export.SheetReservoir}, x.GetSheetList())

	t.Run("logs", func(t *testing.T) {
		rows, err := x.GetRows(export.SheetLogs)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Label", rows[0][0])
		assert.Equal(t, []string{"Cycle 1 - Q1 - day 1", "2023-01-06", "vegetative", "1", "1", "1", "24"}, rows[1][:7])
	})

	t.Run("feeding", func(t *testing.T) {
		rows, err := x.GetRows(export.SheetFeeding)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Cycle 1 - Q1 - day 1", "2023-01-06", "Bloom A", "Acme", "base_line", "10", "2.5"}, rows[1])
	})

	t.Run("reservoir", func(t *testing.T) {
		rows, err := x.GetRows(export.SheetReservoir)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Cycle 1 - Q1 - day 1", "2023-01-06", "refill", "yes", "4", "", "4", "100"}, rows[1])
	})
}

func TestWorkbookUnknownCycle(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	cycles, logs := cyclerepo.New(db), logrepo.New(db)
	s := NewExportService(cycles, logsvc.NewLogService(logs, cycles), feedrepo.New(db), resrepo.New(db))

	var buf bytes.Buffer
	_, err = s.Workbook("missing", &buf)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, buf.Len())
}
