package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	DB *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

func (r *TestimonialRepository) Create(t *model.Testimonial) error {
	return r.DB.Create(t).Error
}

// List orders by submission time; the visitor-typed date field is free text.
func (r *TestimonialRepository) List() ([]model.Testimonial, error) {
	var list []model.Testimonial
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}
