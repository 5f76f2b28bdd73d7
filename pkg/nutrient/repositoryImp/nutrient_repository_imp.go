package repositoryImp

import (
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/apperr"
	"growlog/pkg/nutrient/repository"
)

type nutrientRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NutrientRepository { return &nutrientRepo{db} }

func (r *nutrientRepo) Create(n *entities.Nutrient) error { return r.db.Create(n).Error }

func (r *nutrientRepo) FindByID(id uint) (*entities.Nutrient, error) {
	var n entities.Nutrient
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, apperr.FromDB(err, "nutrient", id)
	}
	return &n, nil
}

func (r *nutrientRepo) List() ([]entities.Nutrient, error) {
	var out []entities.Nutrient
	if err := r.db.Order("brand, name, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *nutrientRepo) Update(n *entities.Nutrient) error { return r.db.Save(n).Error }

// Delete drops the nutrient and every feeding row that used it.
func (r *nutrientRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n entities.Nutrient
		if err := tx.First(&n, id).Error; err != nil {
			return apperr.FromDB(err, "nutrient", id)
		}
		if err := tx.Where("nutrient_id = ?", id).Delete(&entities.NutrientLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&n).Error
	})
}
