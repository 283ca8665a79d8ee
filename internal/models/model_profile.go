package models

import (
	"time"

	"github.com/lib/pq"
)

// ModelProfile is a model's directory entry. Every profile field the client
// may omit is a pointer so a missing value is stored as NULL. Phone carries
// the unique index that makes registration idempotent: the application-level
// duplicate check races with concurrent inserts, the constraint does not.
type ModelProfile struct {
	ID        uint    `gorm:"primaryKey"`
	FullName  *string `gorm:"size:255"`
	Phone     *string `gorm:"size:32;uniqueIndex"`
	Email     *string `gorm:"size:255"`
	BirthDate *time.Time
	Gender    *string `gorm:"size:16"`

	// Biometrics
	Height    *int
	Weight    *int
	Bust      *int
	Waist     *int
	Hips      *int
	ShoeSize  *string `gorm:"size:16"`
	HairColor *string `gorm:"size:64"`
	EyeColor  *string `gorm:"size:64"`

	City       *string `gorm:"size:128;index"`
	Experience *string

	Specializations pq.StringArray `gorm:"type:text[]"`
	PortfolioLinks  pq.StringArray `gorm:"type:text[]"`

	Instagram *string `gorm:"size:255"`
	VK        *string `gorm:"size:255"`
	Telegram  *string `gorm:"size:255"`
	AboutMe   *string

	OpennessLevel     *string `gorm:"size:32"`
	CooperationFormat *string `gorm:"size:64"`
	ProfilePhotoURL   *string

	IsBlocked bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"default:now()"`
	LastLogin *time.Time
}

func (ModelProfile) TableName() string {
	return "models"
}

// Age derives the model's age from the birth year relative to year. Returns
// nil when no birth date is stored.
func (m *ModelProfile) Age(year int) *int {
	if m.BirthDate == nil {
		return nil
	}
	age := year - m.BirthDate.Year()
	return &age
}
