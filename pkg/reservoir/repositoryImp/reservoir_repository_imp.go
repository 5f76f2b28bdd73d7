package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/reservoir/repository"
)

type reservoirRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReservoirRepository { return &reservoirRepo{db} }

func (r *reservoirRepo) WithTx(fn func(repository.ReservoirRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&reservoirRepo{tx}) })
}

func (r *reservoirRepo) FirstByLog(logID uint) (*entities.ReservoirLog, error) {
	var out entities.ReservoirLog
	err := r.db.Where("log_id = ?", logID).Order("id").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reservoirRepo) ListByCycle(cycleID string) ([]entities.ReservoirLog, error) {
	var out []entities.ReservoirLog
	err := r.db.Joins("JOIN logs ON logs.id = reservoir_logs.log_id").
		Where("logs.cycle_id = ?", cycleID).
		Order(entities.LogOrder).
		Find(&out).Error
	return out, err
}

func (r *reservoirRepo) Create(res *entities.ReservoirLog) error { return r.db.Create(res).Error }

func (r *reservoirRepo) Save(res *entities.ReservoirLog) error { return r.db.Save(res).Error }

func (r *reservoirRepo) DeleteByLog(logID uint) error {
	res := r.db.Where("log_id = ?", logID).Delete(&entities.ReservoirLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("reservoir log of log", logID)
	}
	return nil
}
