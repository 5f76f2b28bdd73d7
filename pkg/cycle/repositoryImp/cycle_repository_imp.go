package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/cycle/repository"
)

type cycleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CycleRepository { return &cycleRepo{db} }

func (r *cycleRepo) Create(c *entities.Cycle) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *cycleRepo) FindByID(id string) (*entities.Cycle, error) {
	var c entities.Cycle
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, apperr.FromDB(err, "cycle", id)
	}
	return &c, nil
}

func (r *cycleRepo) List() ([]entities.Cycle, error) {
	var out []entities.Cycle
	if err := r.db.Order("date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cycleRepo) Update(c *entities.Cycle) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

// Delete removes the cycle with its logs and their feeding and reservoir
// rows in one transaction.
func (r *cycleRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var c entities.Cycle
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			return apperr.FromDB(err, "cycle", id)
		}
		logIDs := tx.Model(&entities.Log{}).Select("id").Where("cycle_id = ?", id)
		if err := tx.Where("log_id IN (?)", logIDs).Delete(&entities.NutrientLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("log_id IN (?)", logIDs).Delete(&entities.ReservoirLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cycle_id = ?", id).Delete(&entities.Log{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
}
