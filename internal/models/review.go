package models

// Review links a user's rating to a game.
//
// GameID and UserID are plain integer columns: the store does not declare
// foreign keys, so referential integrity lives entirely in the service layer.
type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"not null" json:"comment"`
	GameID  uint   `gorm:"index;not null" json:"game_id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
}
