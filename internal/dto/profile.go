package dto

import "time"

// RegisterModelRequest carries the model registration payload. Every field
// is optional; absent fields become NULL columns. Dates arrive as
// YYYY-MM-DD strings.
type RegisterModelRequest struct {
	FullName  *string `json:"fullName" validate:"omitempty,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Email     *string `json:"email" validate:"omitempty,email"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender" validate:"omitempty,is-gender"`

	Height    *int    `json:"height" validate:"omitempty,min=50,max=272"`
	Weight    *int    `json:"weight" validate:"omitempty,min=20,max=300"`
	Bust      *int    `json:"bust" validate:"omitempty,min=30,max=200"`
	Waist     *int    `json:"waist" validate:"omitempty,min=30,max=200"`
	Hips      *int    `json:"hips" validate:"omitempty,min=30,max=200"`
	ShoeSize  *string `json:"shoeSize" validate:"omitempty,max=16"`
	HairColor *string `json:"hairColor" validate:"omitempty,max=64"`
	EyeColor  *string `json:"eyeColor" validate:"omitempty,max=64"`

	City       *string `json:"city" validate:"omitempty,max=128"`
	Experience *string `json:"experience"`

	Specializations []string `json:"specializations" validate:"omitempty,dive,max=128"`
	PortfolioLinks  []string `json:"portfolioLinks" validate:"omitempty,dive,url"`

	Instagram *string `json:"instagram" validate:"omitempty,max=255"`
	VK        *string `json:"vk" validate:"omitempty,max=255"`
	Telegram  *string `json:"telegram" validate:"omitempty,max=255"`
	AboutMe   *string `json:"aboutMe"`

	OpennessLevel     *string `json:"opennessLevel" validate:"omitempty,is-openness-level"`
	CooperationFormat *string `json:"cooperationFormat" validate:"omitempty,max=64"`
	ProfilePhotoURL   *string `json:"profilePhotoUrl" validate:"omitempty,url"`
}

// RegisterPhotographerRequest is the photographer counterpart.
type RegisterPhotographerRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Email    *string `json:"email" validate:"omitempty,email"`
	City     *string `json:"city" validate:"omitempty,max=128"`

	ExperienceYears *int    `json:"experienceYears" validate:"omitempty,min=0,max=80"`
	Equipment       *string `json:"equipment"`
	PriceRange      *string `json:"priceRange" validate:"omitempty,max=128"`

	Specializations []string `json:"specializations" validate:"omitempty,dive,max=128"`
	PortfolioLinks  []string `json:"portfolioLinks" validate:"omitempty,dive,url"`

	Instagram *string `json:"instagram" validate:"omitempty,max=255"`
	VK        *string `json:"vk" validate:"omitempty,max=255"`
	Telegram  *string `json:"telegram" validate:"omitempty,max=255"`
	AboutMe   *string `json:"aboutMe"`

	CooperationFormat *string `json:"cooperationFormat" validate:"omitempty,max=64"`
	ProfilePhotoURL   *string `json:"profilePhotoUrl" validate:"omitempty,url"`
}

// ProfileSummary is the canonical registration response body.
type ProfileSummary struct {
	ID        uint      `json:"id"`
	FullName  *string   `json:"fullName"`
	Phone     *string   `json:"phone"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResult couples the summary with the dedup outcome: Created is
// false when an existing profile with the same phone was returned instead
// of inserting a new row.
type RegisterResult struct {
	Summary ProfileSummary
	Created bool
}
