package model

import "time"

// Testimonial date stays free text on purpose: visitors type things like
// "last Easter" and nothing downstream sorts on it.
type Testimonial struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Emoji     string    `gorm:"size:16" json:"emoji,omitempty"`
	Date      string    `gorm:"size:64" json:"date,omitempty"`
	Approved  bool      `gorm:"not null;default:true" json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
