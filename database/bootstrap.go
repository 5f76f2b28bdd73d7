// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"growlog/entities"
)

// Open connects to the sqlite file at path (":memory:" works for tests),
// turns on foreign keys and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// one connection: sqlite serializes writers anyway, and pragmas and
	// in-memory databases are per connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite is Open for process startup: any failure is fatal.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	return db
}

// Migrate folds legacy duplicate rows and then auto-migrates every entity.
func Migrate(db *gorm.DB) error {
	// IMPORTANT: fold duplicates BEFORE AutoMigrate so the unique indexes can be created
	if err := foldDuplicateNutrientLogs(db); err != nil {
		return fmt.Errorf("migrate nutrient_logs: %w", err)
	}
	if err := foldDuplicateReservoirLogs(db); err != nil {
		return fmt.Errorf("migrate reservoir_logs: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Cycle{},
		&entities.Log{},
		&entities.Nutrient{},
		&entities.NutrientLog{},
		&entities.ReservoirLog{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func tableExists(db *gorm.DB, name string) (bool, error) {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&tbl).Error; err != nil {
		return false, fmt.Errorf("check table exist: %w", err)
	}
	return tbl != "", nil
}

// foldDuplicateNutrientLogs merges rows written before (log_id, nutrient_id)
// was unique: the oldest row keeps the summed concentration, the rest go.
func foldDuplicateNutrientLogs(db *gorm.DB) error {
	ok, err := tableExists(db, "nutrient_logs")
	if err != nil || !ok {
		// fresh DB, nothing to do
		return err
	}

	const keepers = `SELECT MIN(id) FROM nutrient_logs GROUP BY log_id, nutrient_id HAVING COUNT(*) > 1`
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
UPDATE nutrient_logs SET concentration = (
    SELECT SUM(n2.concentration) FROM nutrient_logs n2
    WHERE n2.log_id = nutrient_logs.log_id AND n2.nutrient_id = nutrient_logs.nutrient_id
) WHERE id IN (` + keepers + `)`).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM nutrient_logs WHERE id NOT IN (SELECT MIN(id) FROM nutrient_logs GROUP BY log_id, nutrient_id)`)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("[db] folded %d duplicate nutrient_logs rows", res.RowsAffected)
		}
		return nil
	})
}

// foldDuplicateReservoirLogs merges rows written before log_id was unique,
// summing volumes the same way the reservoir upsert does.
func foldDuplicateReservoirLogs(db *gorm.DB) error {
	ok, err := tableExists(db, "reservoir_logs")
	if err != nil || !ok {
		return err
	}

	const keepers = `SELECT MIN(id) FROM reservoir_logs GROUP BY log_id HAVING COUNT(*) > 1`
	const same = `FROM reservoir_logs r2 WHERE r2.log_id = reservoir_logs.log_id`
	return db.Transaction(func(tx *gorm.DB) error {
		// status first: it reads the duplicate rows before they are summed
		if err := tx.Exec(`
UPDATE reservoir_logs SET status = CASE
    WHEN COALESCE((SELECT SUM(r2.waste_water) ` + same + `), 0) != 0 THEN 'refresh'
    ELSE 'refill' END
WHERE id IN (` + keepers + `)`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
UPDATE reservoir_logs SET
    water = (SELECT SUM(r2.water) ` + same + `),
    waste_water = (SELECT SUM(r2.waste_water) ` + same + `),
    ro_amount = (SELECT SUM(r2.ro_amount) ` + same + `)
WHERE id IN (` + keepers + `)`).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM reservoir_logs WHERE id NOT IN (SELECT MIN(id) FROM reservoir_logs GROUP BY log_id)`)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("[db] folded %d duplicate reservoir_logs rows", res.RowsAffected)
		}
		return nil
	})
}
