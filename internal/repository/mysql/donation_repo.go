package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type DonationRepository struct {
	DB *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{DB: db}
}

func (r *DonationRepository) Create(d *model.Donation) error {
	return r.DB.Create(d).Error
}

func (r *DonationRepository) List() ([]model.Donation, error) {
	var list []model.Donation
	err := r.DB.Order("donated_at DESC").Find(&list).Error
	return list, err
}

func (r *DonationRepository) FindByID(id uint64) (*model.Donation, error) {
	var d model.Donation
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *DonationRepository) Save(d *model.Donation) error {
	return r.DB.Save(d).Error
}

func (r *DonationRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Donation{}, id).Error
}
