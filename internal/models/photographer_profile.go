package models

import (
	"time"

	"github.com/lib/pq"
)

// PhotographerProfile mirrors ModelProfile with professional fields in place
// of biometrics. Phone is the dedup key here too.
type PhotographerProfile struct {
	ID       uint    `gorm:"primaryKey"`
	FullName *string `gorm:"size:255"`
	Phone    *string `gorm:"size:32;uniqueIndex"`
	Email    *string `gorm:"size:255"`
	City     *string `gorm:"size:128;index"`

	ExperienceYears *int
	Equipment       *string
	PriceRange      *string `gorm:"size:128"`

	Specializations pq.StringArray `gorm:"type:text[]"`
	PortfolioLinks  pq.StringArray `gorm:"type:text[]"`

	Instagram *string `gorm:"size:255"`
	VK        *string `gorm:"size:255"`
	Telegram  *string `gorm:"size:255"`
	AboutMe   *string

	CooperationFormat *string `gorm:"size:64"`
	ProfilePhotoURL   *string

	IsBlocked bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"default:now()"`
	LastLogin *time.Time
}

func (PhotographerProfile) TableName() string {
	return "photographers"
}
