package repositoryImp

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/dailylog/repository"
)

type logRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LogRepository { return &logRepo{db} }

func (r *logRepo) Create(l *entities.Log) error {
	return r.db.Omit(clause.Associations).Create(l).Error
}

func (r *logRepo) FindByID(cycleID string, id uint) (*entities.Log, error) {
	var l entities.Log
	if err := r.db.Where("id = ? AND cycle_id = ?", id, cycleID).First(&l).Error; err != nil {
		return nil, apperr.FromDB(err, "log", id)
	}
	return &l, nil
}

func (r *logRepo) ListByCycle(cycleID string) ([]entities.Log, error) {
	var out []entities.Log
	if err := r.db.Where("cycle_id = ?", cycleID).Order(entities.LogOrder).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Last is the final log of the cycle in default ordering.
func (r *logRepo) Last(cycleID string) (*entities.Log, error) {
	logs, err := r.ListByCycle(cycleID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, apperr.NotFound("previous log of cycle", cycleID)
	}
	return &logs[len(logs)-1], nil
}

func (r *logRepo) Update(l *entities.Log) error {
	return r.db.Omit(clause.Associations).Save(l).Error
}

func (r *logRepo) Delete(cycleID string, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var l entities.Log
		if err := tx.Where("id = ? AND cycle_id = ?", id, cycleID).First(&l).Error; err != nil {
			return apperr.FromDB(err, "log", id)
		}
		if err := tx.Where("log_id = ?", id).Delete(&entities.NutrientLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("log_id = ?", id).Delete(&entities.ReservoirLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&l).Error
	})
}

// AverageVegDayTemp averages temperature_day over the cycle's vegetative
// logs, skipping nulls. Nil when no log qualifies.
func (r *logRepo) AverageVegDayTemp(cycleID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&entities.Log{}).
		Select("AVG(temperature_day)").
		Where("cycle_id = ? AND phase = ? AND temperature_day IS NOT NULL", cycleID, entities.PhaseVegetative).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
