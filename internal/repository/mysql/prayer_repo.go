package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type PrayerRepository struct {
	DB *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) *PrayerRepository {
	return &PrayerRepository{DB: db}
}

func (r *PrayerRepository) Create(p *model.PrayerRequest) error {
	return r.DB.Create(p).Error
}

func (r *PrayerRepository) List() ([]model.PrayerRequest, error) {
	var list []model.PrayerRequest
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}
