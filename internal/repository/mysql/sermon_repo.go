package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type SermonRepository struct {
	DB *gorm.DB
}

func NewSermonRepository(db *gorm.DB) *SermonRepository {
	return &SermonRepository{DB: db}
}

func (r *SermonRepository) Create(s *model.Sermon) error {
	return r.DB.Create(s).Error
}

// List returns every sermon, most recent first.
func (r *SermonRepository) List() ([]model.Sermon, error) {
	var list []model.Sermon
	err := r.DB.Order("date DESC").Find(&list).Error
	return list, err
}

func (r *SermonRepository) FindByID(id uint64) (*model.Sermon, error) {
	var s model.Sermon
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SermonRepository) Save(s *model.Sermon) error {
	return r.DB.Save(s).Error
}

func (r *SermonRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Sermon{}, id).Error
}

// IncrementCounter bumps likes or views in one UPDATE so concurrent
// increments never lose counts, then re-reads the row.
func (r *SermonRepository) IncrementCounter(id uint64, column string) (*model.Sermon, error) {
	tx := r.DB.Model(&model.Sermon{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}
