package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Platforms is an ordered list of platform names. The store has no native
// string-list type, so it is persisted as a JSON text column.
type Platforms []string

// Value implements driver.Valuer.
func (p Platforms) Value() (driver.Value, error) {
	if p == nil {
		p = Platforms{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *Platforms) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = Platforms{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("cannot scan %T into Platforms", value)
}

// Game represents a game in the catalog.
//
// Name uniqueness is enforced by the service layer, with the unique index as
// the backstop (same arrangement as User.Email).
type Game struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	Platform    Platforms `gorm:"type:text;not null" json:"platform"`
}

// GameUpdate carries a partial update for a game. A nil field leaves the
// stored value unchanged.
type GameUpdate struct {
	Name        *string
	Description *string
	Price       *int
	Platform    *Platforms
}

// Changes returns the column assignments for the fields present in the update.
func (u GameUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Price != nil {
		changes["price"] = *u.Price
	}
	if u.Platform != nil {
		changes["platform"] = *u.Platform
	}
	return changes
}
