package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                         // Primary key
	Username  string    `gorm:"uniqueIndex;size:30;not null" json:"username"` // Unique username
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`   // Unique email
	Password  string    `gorm:"size:255;not null" json:"-"`                   // Bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt"`                                    // Timestamp of creation
	UpdatedAt time.Time `json:"updatedAt"`                                    // Timestamp of last update
	Todos     []Todo    `gorm:"constraint:OnDelete:CASCADE" json:"-"`         // Owned todos, cascade-deleted with the user
}
