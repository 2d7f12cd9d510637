package domain

import "time"

// Todo Model
type Todo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	Title       string    `gorm:"size:255;not null" json:"title"`          // Title, 1-255 chars
	Description string    `gorm:"type:text" json:"description"`            // Optional free text
	Completed   bool      `gorm:"not null;default:false" json:"completed"` // Completion flag
	UserID      uint      `gorm:"index;not null" json:"userId"`            // Owning user, immutable after creation
	CreatedAt   time.Time `json:"createdAt"`                               // Timestamp of creation
	UpdatedAt   time.Time `json:"updatedAt"`                               // Timestamp of last update
}

// TodoPatch carries the optional fields of a partial update. Only populated
// fields are written; column names never come from request input.
type TodoPatch struct {
	Title       *string // New title, if set
	Description *string // New description, if set
	Completed   *bool   // New completion flag, if set
}

// Empty reports whether the patch would modify nothing
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
