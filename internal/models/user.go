package models

// User represents a registered reviewer.
//
// Email uniqueness is enforced by the service layer; the unique index is only
// a backstop for concurrent inserts that race past the check.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
}
