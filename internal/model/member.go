package model

import "time"

// Member and Resource used to live in process-local arrays in the route
// layer; they are persisted alongside everything else now.

type Member struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:128" json:"email,omitempty"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Ministry  string    `gorm:"size:64" json:"ministry,omitempty"`
	JoinedAt  time.Time `gorm:"not null;index:idx_member_joined,sort:desc" json:"joinedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type Resource struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"size:64" json:"category,omitempty"`
	FileURL     string    `gorm:"size:255" json:"fileUrl,omitempty"`
	CreatedAt   time.Time `gorm:"index:idx_resource_created,sort:desc" json:"createdAt"`
}
