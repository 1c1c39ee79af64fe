package model

import "time"

type Sermon struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Preacher    string    `gorm:"size:128;not null" json:"preacher"`
	Scripture   string    `gorm:"size:128" json:"scripture,omitempty"`
	Date        time.Time `gorm:"not null;index:idx_sermon_date,sort:desc" json:"date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	VideoURL    string    `gorm:"size:255" json:"videoUrl,omitempty"`
	AudioURL    string    `gorm:"size:255" json:"audioUrl,omitempty"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	Likes       int64     `gorm:"not null;default:0" json:"likes"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
