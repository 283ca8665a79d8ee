package repositories

import (
	"errors"

	"gorm.io/gorm"

	"modelboard_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists and searches both profile kinds. Search
// methods return the matching page plus the unpaginated total for the same
// predicate set.
type ProfileRepository interface {
	CreateModelProfile(profile *models.ModelProfile) error
	FindModelProfileByID(id uint) (*models.ModelProfile, error)
	FindModelProfileByPhone(phone string) (*models.ModelProfile, error)
	SearchModelProfiles(criteria ModelSearchCriteria) ([]models.ModelProfile, int64, error)

	CreatePhotographerProfile(profile *models.PhotographerProfile) error
	FindPhotographerProfileByPhone(phone string) (*models.PhotographerProfile, error)
	SearchPhotographerProfiles(criteria PhotographerSearchCriteria) ([]models.PhotographerProfile, int64, error)
}

// ModelSearchCriteria is the resolved predicate set for a model search.
// The service layer has already applied the city default, converted age
// bounds to birth-year bounds and expanded the openness threshold; empty
// or nil fields add no predicate. Blocked profiles are always excluded.
type ModelSearchCriteria struct {
	ID                *int
	Name              string
	City              string
	Gender            string
	MinHeight         *int
	MaxHeight         *int
	MinBirthYear      *int
	MaxBirthYear      *int
	OpennessLevels    []string
	CooperationFormat string
	Page              int
	PerPage           int
}

// PhotographerSearchCriteria is the photographer counterpart.
type PhotographerSearchCriteria struct {
	ID                *int
	Name              string
	City              string
	Specialization    string
	CooperationFormat string
	Page              int
	PerPage           int
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateModelProfile(profile *models.ModelProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindModelProfileByID(id uint) (*models.ModelProfile, error) {
	var profile models.ModelProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindModelProfileByPhone(phone string) (*models.ModelProfile, error) {
	var profile models.ModelProfile
	err := r.db.Where("phone = ?", phone).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SearchModelProfiles(criteria ModelSearchCriteria) ([]models.ModelProfile, int64, error) {
	var profiles []models.ModelProfile
	query := r.db.Model(&models.ModelProfile{}).Where("is_blocked = ?", false)

	if criteria.ID != nil {
		query = query.Where("id = ?", *criteria.ID)
	}

	if criteria.Name != "" {
		query = query.Where("full_name ILIKE ?", "%"+criteria.Name+"%")
	}

	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}

	if criteria.Gender != "" {
		query = query.Where("gender = ?", criteria.Gender)
	}

	if criteria.MinHeight != nil {
		query = query.Where("height >= ?", *criteria.MinHeight)
	}

	if criteria.MaxHeight != nil {
		query = query.Where("height <= ?", *criteria.MaxHeight)
	}

	// Age filters arrive as birth-year bounds: minAge caps the birth year
	// from above, maxAge from below.
	if criteria.MaxBirthYear != nil {
		query = query.Where("EXTRACT(YEAR FROM birth_date) <= ?", *criteria.MaxBirthYear)
	}

	if criteria.MinBirthYear != nil {
		query = query.Where("EXTRACT(YEAR FROM birth_date) >= ?", *criteria.MinBirthYear)
	}

	if len(criteria.OpennessLevels) > 0 {
		query = query.Where("openness_level IN ?", criteria.OpennessLevels)
	}

	if criteria.CooperationFormat != "" {
		query = query.Where("cooperation_format = ?", criteria.CooperationFormat)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_login DESC NULLS LAST").
		Limit(criteria.PerPage).
		Offset((criteria.Page - 1) * criteria.PerPage).
		Find(&profiles).Error

	return profiles, total, err
}

func (r *ProfileRepositoryImpl) CreatePhotographerProfile(profile *models.PhotographerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindPhotographerProfileByPhone(phone string) (*models.PhotographerProfile, error) {
	var profile models.PhotographerProfile
	err := r.db.Where("phone = ?", phone).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SearchPhotographerProfiles(criteria PhotographerSearchCriteria) ([]models.PhotographerProfile, int64, error) {
	var profiles []models.PhotographerProfile
	query := r.db.Model(&models.PhotographerProfile{}).Where("is_blocked = ?", false)

	if criteria.ID != nil {
		query = query.Where("id = ?", *criteria.ID)
	}

	if criteria.Name != "" {
		query = query.Where("full_name ILIKE ?", "%"+criteria.Name+"%")
	}

	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}

	if criteria.Specialization != "" {
		query = query.Where("? = ANY(specializations)", criteria.Specialization)
	}

	if criteria.CooperationFormat != "" {
		query = query.Where("cooperation_format = ?", criteria.CooperationFormat)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_login DESC NULLS LAST").
		Limit(criteria.PerPage).
		Offset((criteria.Page - 1) * criteria.PerPage).
		Find(&profiles).Error

	return profiles, total, err
}
