package model

import "time"

const (
	RoleMember    = "member"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Role      string    `gorm:"size:16;not null;default:'member'" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy with the password hash cleared. The json tag
// already hides it; this covers anything that logs or re-marshals the struct.
func (u *User) Sanitized() User {
	out := *u
	out.Password = ""
	return out
}
