package model

import "time"

type Devotional struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Snippet   string    `gorm:"type:text;not null" json:"snippet"`
	Scripture string    `gorm:"size:128;not null" json:"scripture"`
	Image     string    `gorm:"size:255;not null" json:"image"`
	Date      time.Time `gorm:"not null;index:idx_devotional_date,sort:desc" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
