package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/feeding/repository"
)

type feedingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeedingRepository { return &feedingRepo{db} }

func (r *feedingRepo) WithTx(fn func(repository.FeedingRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&feedingRepo{tx}) })
}

func (r *feedingRepo) FindByPair(logID, nutrientID uint) ([]entities.NutrientLog, error) {
	var out []entities.NutrientLog
	err := r.db.Where("log_id = ? AND nutrient_id = ?", logID, nutrientID).Order("id").Find(&out).Error
	return out, err
}

func (r *feedingRepo) Create(nl *entities.NutrientLog) error {
	return r.db.Omit(clause.Associations).Create(nl).Error
}

func (r *feedingRepo) DeleteIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&entities.NutrientLog{}, ids).Error
}

func (r *feedingRepo) FindByID(logID, id uint) (*entities.NutrientLog, error) {
	var nl entities.NutrientLog
	if err := r.db.Preload("Nutrient").Where("id = ? AND log_id = ?", id, logID).First(&nl).Error; err != nil {
		return nil, apperr.FromDB(err, "nutrient log", id)
	}
	return &nl, nil
}

func (r *feedingRepo) ListByLog(logID uint) ([]entities.NutrientLog, error) {
	var out []entities.NutrientLog
	err := r.db.Preload("Nutrient").
		Joins("JOIN nutrients ON nutrients.id = nutrient_logs.nutrient_id").
		Where("nutrient_logs.log_id = ?", logID).
		Order(entities.NutrientTypeOrder).
		Find(&out).Error
	return out, err
}

func (r *feedingRepo) ListByCycle(cycleID string) ([]entities.NutrientLog, error) {
	var out []entities.NutrientLog
	err := r.db.Preload("Nutrient").
		Joins("JOIN logs ON logs.id = nutrient_logs.log_id").
		Joins("JOIN nutrients ON nutrients.id = nutrient_logs.nutrient_id").
		Where("logs.cycle_id = ?", cycleID).
		Order(entities.LogOrder + ", " + entities.NutrientTypeOrder).
		Find(&out).Error
	return out, err
}

func (r *feedingRepo) Delete(logID, id uint) error {
	res := r.db.Where("id = ? AND log_id = ?", id, logID).Delete(&entities.NutrientLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("nutrient log", id)
	}
	return nil
}
