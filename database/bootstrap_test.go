package database

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growlog/entities"
)

func legacyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestOpenMigratesSchema(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)

	for _, table := range []string{"cycles", "logs", "nutrients", "nutrient_logs", "reservoir_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&entities.NutrientLog{}, "idx_nutrient_log_pair"))

	var fk int
	require.NoError(t, db.Raw(`PRAGMA foreign_keys`).Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestFoldDuplicateNutrientLogs(t *testing.T) {
	db := legacyDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE nutrient_logs (id INTEGER PRIMARY KEY AUTOINCREMENT, log_id INTEGER, nutrient_id INTEGER, concentration INTEGER)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO nutrient_logs (log_id, nutrient_id, concentration) VALUES (1, 1, 10), (1, 1, 5), (1, 2, 7), (1, 1, 1)`).Error)

	require.NoError(t, foldDuplicateNutrientLogs(db))

	type row struct {
		ID            uint
		NutrientID    uint
		Concentration int
	}
	var rows []row
	require.NoError(t, db.Raw(`SELECT id, nutrient_id, concentration FROM nutrient_logs ORDER BY id`).Scan(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, row{ID: 1, NutrientID: 1, Concentration: 16}, rows[0])
	assert.Equal(t, row{ID: 3, NutrientID: 2, Concentration: 7}, rows[1])
}

func TestFoldDuplicateReservoirLogs(t *testing.T) {
	db := legacyDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE reservoir_logs (id INTEGER PRIMARY KEY AUTOINCREMENT, log_id INTEGER, status TEXT, reverse_osmosis TEXT, water INTEGER, waste_water INTEGER, ro_amount INTEGER)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO reservoir_logs (log_id, status, reverse_osmosis, water, waste_water, ro_amount) VALUES
		(1, 'refill', 'yes', 5, NULL, 5),
		(1, 'refresh', 'no', 4, 3, NULL),
		(2, 'refill', 'yes', 8, NULL, 8)`).Error)

	require.NoError(t, foldDuplicateReservoirLogs(db))

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM reservoir_logs`).Scan(&count).Error)
	assert.EqualValues(t, 2, count)

	var merged struct {
		Status     string
		Water      int
		WasteWater *int
		RoAmount   *int
	}
	require.NoError(t, db.Raw(`SELECT status, water, waste_water, ro_amount FROM reservoir_logs WHERE log_id = 1`).Scan(&merged).Error)
	assert.Equal(t, "refresh", merged.Status)
	assert.Equal(t, 9, merged.Water)
	require.NotNil(t, merged.WasteWater)
	assert.Equal(t, 3, *merged.WasteWater)
	require.NotNil(t, merged.RoAmount)
	assert.Equal(t, 5, *merged.RoAmount)
}

func TestFoldSkipsFreshDatabase(t *testing.T) {
	db := legacyDB(t)
	assert.NoError(t, foldDuplicateNutrientLogs(db))
	assert.NoError(t, foldDuplicateReservoirLogs(db))
}
