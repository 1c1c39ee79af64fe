package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(e *model.Event) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) List() ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Order("date DESC").Find(&list).Error
	return list, err
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var e model.Event
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EventRepository) Save(e *model.Event) error {
	return r.DB.Save(e).Error
}

func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Event{}, id).Error
}
