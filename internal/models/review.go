package models

import "time"

// Review is a one-shot rating of a model: created once, never edited.
// IsVerified is set true on every insert; there is no verification workflow
// yet.
type Review struct {
	ID          uint    `gorm:"primaryKey"`
	ModelID     uint    `gorm:"not null;index"`
	AuthorName  *string `gorm:"size:255"`
	AuthorPhone *string `gorm:"size:32"`
	Rating      int     `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5"`
	ReviewText  *string
	IsVerified  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"default:now()"`

	Model ModelProfile `gorm:"foreignKey:ModelID"`
}

func (Review) TableName() string {
	return "model_reviews"
}
