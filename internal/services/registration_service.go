package services

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/models"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/pkg/apperrors"
)

// RegistrationService creates profiles with dedup-by-phone semantics: a
// second registration with a known phone returns the existing row instead
// of inserting a duplicate.
type RegistrationService interface {
	RegisterModel(req *dto.RegisterModelRequest) (*dto.RegisterResult, error)
	RegisterPhotographer(req *dto.RegisterPhotographerRequest) (*dto.RegisterResult, error)
}

type registrationService struct {
	profileRepo repositories.ProfileRepository
}

func NewRegistrationService(profileRepo repositories.ProfileRepository) RegistrationService {
	return &registrationService{profileRepo: profileRepo}
}

func (s *registrationService) RegisterModel(req *dto.RegisterModelRequest) (*dto.RegisterResult, error) {
	if phone := stringValue(req.Phone); phone != "" {
		existing, err := s.profileRepo.FindModelProfileByPhone(phone)
		if err == nil {
			return duplicateResult(existing.ID, existing.FullName, existing.Phone, existing.City, existing.CreatedAt), nil
		}
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrDatabase(err)
		}
	}

	profile, err := modelProfileFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.CreateModelProfile(profile); err != nil {
		// The pre-insert check races with concurrent registrations; the
		// unique index on phone is what actually closes it. Treat a
		// constraint hit like the dedup path.
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.profileRepo.FindModelProfileByPhone(stringValue(req.Phone))
			if findErr != nil {
				return nil, apperrors.ErrDatabase(findErr)
			}
			return duplicateResult(existing.ID, existing.FullName, existing.Phone, existing.City, existing.CreatedAt), nil
		}
		return nil, apperrors.ErrDatabase(err)
	}

	return &dto.RegisterResult{
		Summary: dto.ProfileSummary{
			ID:        profile.ID,
			FullName:  profile.FullName,
			Phone:     profile.Phone,
			City:      profile.City,
			CreatedAt: profile.CreatedAt,
		},
		Created: true,
	}, nil
}

func (s *registrationService) RegisterPhotographer(req *dto.RegisterPhotographerRequest) (*dto.RegisterResult, error) {
	if phone := stringValue(req.Phone); phone != "" {
		existing, err := s.profileRepo.FindPhotographerProfileByPhone(phone)
		if err == nil {
			return duplicateResult(existing.ID, existing.FullName, existing.Phone, existing.City, existing.CreatedAt), nil
		}
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrDatabase(err)
		}
	}

	profile := photographerProfileFromRequest(req)

	if err := s.profileRepo.CreatePhotographerProfile(profile); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.profileRepo.FindPhotographerProfileByPhone(stringValue(req.Phone))
			if findErr != nil {
				return nil, apperrors.ErrDatabase(findErr)
			}
			return duplicateResult(existing.ID, existing.FullName, existing.Phone, existing.City, existing.CreatedAt), nil
		}
		return nil, apperrors.ErrDatabase(err)
	}

	return &dto.RegisterResult{
		Summary: dto.ProfileSummary{
			ID:        profile.ID,
			FullName:  profile.FullName,
			Phone:     profile.Phone,
			City:      profile.City,
			CreatedAt: profile.CreatedAt,
		},
		Created: true,
	}, nil
}

func modelProfileFromRequest(req *dto.RegisterModelRequest) (*models.ModelProfile, error) {
	profile := &models.ModelProfile{
		FullName:          req.FullName,
		Phone:             req.Phone,
		Email:             req.Email,
		Gender:            req.Gender,
		Height:            req.Height,
		Weight:            req.Weight,
		Bust:              req.Bust,
		Waist:             req.Waist,
		Hips:              req.Hips,
		ShoeSize:          req.ShoeSize,
		HairColor:         req.HairColor,
		EyeColor:          req.EyeColor,
		City:              req.City,
		Experience:        req.Experience,
		Specializations:   pq.StringArray(emptyIfNil(req.Specializations)),
		PortfolioLinks:    pq.StringArray(emptyIfNil(req.PortfolioLinks)),
		Instagram:         req.Instagram,
		VK:                req.VK,
		Telegram:          req.Telegram,
		AboutMe:           req.AboutMe,
		OpennessLevel:     req.OpennessLevel,
		CooperationFormat: req.CooperationFormat,
		ProfilePhotoURL:   req.ProfilePhotoURL,
		IsBlocked:         false,
	}

	if req.BirthDate != nil {
		// The DTO already validated the format; a parse failure here would
		// mean the validator and this code disagree.
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid birthDate: expected YYYY-MM-DD")
		}
		profile.BirthDate = &birthDate
	}

	return profile, nil
}

func photographerProfileFromRequest(req *dto.RegisterPhotographerRequest) *models.PhotographerProfile {
	return &models.PhotographerProfile{
		FullName:          req.FullName,
		Phone:             req.Phone,
		Email:             req.Email,
		City:              req.City,
		ExperienceYears:   req.ExperienceYears,
		Equipment:         req.Equipment,
		PriceRange:        req.PriceRange,
		Specializations:   pq.StringArray(emptyIfNil(req.Specializations)),
		PortfolioLinks:    pq.StringArray(emptyIfNil(req.PortfolioLinks)),
		Instagram:         req.Instagram,
		VK:                req.VK,
		Telegram:          req.Telegram,
		AboutMe:           req.AboutMe,
		CooperationFormat: req.CooperationFormat,
		ProfilePhotoURL:   req.ProfilePhotoURL,
		IsBlocked:         false,
	}
}

func duplicateResult(id uint, fullName, phone, city *string, createdAt time.Time) *dto.RegisterResult {
	return &dto.RegisterResult{
		Summary: dto.ProfileSummary{
			ID:        id,
			FullName:  fullName,
			Phone:     phone,
			City:      city,
			CreatedAt: createdAt,
		},
		Created: false,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// emptyIfNil keeps list columns as empty arrays, never NULL.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
