package mysql

import (
	"github.com/0001fella/abundant-life-sub000/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) Create(m *model.Member) error {
	return r.DB.Create(m).Error
}

func (r *MemberRepository) List() ([]model.Member, error) {
	var list []model.Member
	err := r.DB.Order("joined_at DESC").Find(&list).Error
	return list, err
}

func (r *MemberRepository) FindByID(id uint64) (*model.Member, error) {
	var m model.Member
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MemberRepository) Save(m *model.Member) error {
	return r.DB.Save(m).Error
}

func (r *MemberRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Member{}, id).Error
}
