package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(res *model.Resource) error {
	return r.DB.Create(res).Error
}

func (r *ResourceRepository) List() ([]model.Resource, error) {
	var list []model.Resource
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ResourceRepository) FindByID(id uint64) (*model.Resource, error) {
	var res model.Resource
	err := r.DB.First(&res, id).Error
	return &res, err
}

func (r *ResourceRepository) Save(res *model.Resource) error {
	return r.DB.Save(res).Error
}

func (r *ResourceRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Resource{}, id).Error
}
