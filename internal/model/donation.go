package model

import "time"

var DonationTypes = []string{"tithe", "offering", "project", "other"}

func ValidDonationType(t string) bool {
	for _, v := range DonationTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Donation struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null;default:'Anonymous'" json:"name"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Type      string    `gorm:"size:16;not null;default:'other'" json:"type"`
	Intent    string    `gorm:"size:200" json:"intent,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	DonatedAt time.Time `gorm:"not null;index:idx_donation_date,sort:desc" json:"donatedAt"`
	CreatedAt time.Time `json:"createdAt"`
}
