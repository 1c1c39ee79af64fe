package model

import "time"

// EventCategories is the fixed set of ministry groupings an event can target.
var EventCategories = []string{"General", "Men", "Women", "Children", "Youths", "Teens", "Visionaries"}

func ValidEventCategory(c string) bool {
	for _, v := range EventCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Event struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null;index:idx_event_date,sort:desc" json:"date"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	Category    string    `gorm:"size:32;not null;default:'General'" json:"category"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
