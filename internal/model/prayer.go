package model

import "time"

type PrayerRequest struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null;default:'Anonymous'" json:"name"`
	Email     string    `gorm:"size:128" json:"email,omitempty"`
	Request   string    `gorm:"type:text;not null" json:"request"`
	CreatedAt time.Time `gorm:"index:idx_prayer_created,sort:desc" json:"createdAt"`
}

func (PrayerRequest) TableName() string {
	return "prayer_requests"
}
