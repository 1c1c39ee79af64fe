package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type DevotionalRepository struct {
	DB *gorm.DB
}

func NewDevotionalRepository(db *gorm.DB) *DevotionalRepository {
	return &DevotionalRepository{DB: db}
}

func (r *DevotionalRepository) Create(d *model.Devotional) error {
	return r.DB.Create(d).Error
}

func (r *DevotionalRepository) List() ([]model.Devotional, error) {
	var list []model.Devotional
	err := r.DB.Order("date DESC").Find(&list).Error
	return list, err
}

func (r *DevotionalRepository) FindByID(id uint64) (*model.Devotional, error) {
	var d model.Devotional
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *DevotionalRepository) Save(d *model.Devotional) error {
	return r.DB.Save(d).Error
}

func (r *DevotionalRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Devotional{}, id).Error
}
