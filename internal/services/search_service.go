package services

import (
	"time"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/models"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/pkg/apperrors"
)

// SearchPerPage is the fixed search page size.
const SearchPerPage = 20

// SearchService composes filter predicates and returns one page of profile
// summaries with pagination metadata.
type SearchService interface {
	SearchProfiles(req *dto.SearchProfilesRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	profileRepo repositories.ProfileRepository
	defaultCity string
	now         func() time.Time
}

// NewSearchService builds the search service. defaultCity narrows searches
// that carry no city parameter; now is injectable because age filters are a
// moving target relative to the current calendar year.
func NewSearchService(profileRepo repositories.ProfileRepository, defaultCity string, now func() time.Time) SearchService {
	if now == nil {
		now = time.Now
	}
	return &searchService{
		profileRepo: profileRepo,
		defaultCity: defaultCity,
		now:         now,
	}
}

func (s *searchService) SearchProfiles(req *dto.SearchProfilesRequest) (*dto.SearchResponse, error) {
	page := 1
	if req.Page != nil {
		page = *req.Page
	}

	if req.Type == dto.ProfileTypeModel || req.Type == "" {
		return s.searchModels(req, page)
	}
	return s.searchPhotographers(req, page)
}

func (s *searchService) searchModels(req *dto.SearchProfilesRequest, page int) (*dto.SearchResponse, error) {
	year := s.now().Year()

	criteria := repositories.ModelSearchCriteria{
		ID:                req.ID,
		Name:              req.Name,
		City:              s.resolveCity(req.City),
		Gender:            req.Gender,
		MinHeight:         req.MinHeight,
		MaxHeight:         req.MaxHeight,
		CooperationFormat: req.CooperationFormat,
		// Unknown levels yield nil and therefore no predicate.
		OpennessLevels: models.OpennessLevelsFrom(req.OpennessLevel),
		Page:           page,
		PerPage:        SearchPerPage,
	}

	// minAge=N admits only people born in or before year-N; maxAge is the
	// mirror bound.
	if req.MinAge != nil {
		maxBirthYear := year - *req.MinAge
		criteria.MaxBirthYear = &maxBirthYear
	}
	if req.MaxAge != nil {
		minBirthYear := year - *req.MaxAge
		criteria.MinBirthYear = &minBirthYear
	}

	profiles, total, err := s.profileRepo.SearchModelProfiles(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	results := make([]dto.ModelSearchResult, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		results = append(results, dto.ModelSearchResult{
			ID:                p.ID,
			FullName:          p.FullName,
			Age:               p.Age(year),
			Height:            p.Height,
			City:              p.City,
			Gender:            p.Gender,
			OpennessLevel:     p.OpennessLevel,
			CooperationFormat: p.CooperationFormat,
			ProfilePhotoURL:   p.ProfilePhotoURL,
			LastLogin:         formatTime(p.LastLogin),
		})
	}

	return &dto.SearchResponse{
		Profiles:   results,
		Pagination: buildPagination(page, total),
	}, nil
}

func (s *searchService) searchPhotographers(req *dto.SearchProfilesRequest, page int) (*dto.SearchResponse, error) {
	criteria := repositories.PhotographerSearchCriteria{
		ID:                req.ID,
		Name:              req.Name,
		City:              s.resolveCity(req.City),
		Specialization:    req.Specialization,
		CooperationFormat: req.CooperationFormat,
		Page:              page,
		PerPage:           SearchPerPage,
	}

	profiles, total, err := s.profileRepo.SearchPhotographerProfiles(criteria)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	results := make([]dto.PhotographerSearchResult, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		results = append(results, dto.PhotographerSearchResult{
			ID:                p.ID,
			FullName:          p.FullName,
			City:              p.City,
			Specializations:   p.Specializations,
			CooperationFormat: p.CooperationFormat,
			PriceRange:        p.PriceRange,
			ExperienceYears:   p.ExperienceYears,
			ProfilePhotoURL:   p.ProfilePhotoURL,
			LastLogin:         formatTime(p.LastLogin),
		})
	}

	return &dto.SearchResponse{
		Profiles:   results,
		Pagination: buildPagination(page, total),
	}, nil
}

// resolveCity keeps the historical contract: an omitted city narrows the
// search to the default city, and only the explicit "any" sentinel widens
// it to every city.
func (s *searchService) resolveCity(city string) string {
	switch city {
	case "":
		return s.defaultCity
	case dto.CityAny:
		return ""
	default:
		return city
	}
}

func buildPagination(page int, total int64) dto.Pagination {
	totalPages := int(total) / SearchPerPage
	if int(total)%SearchPerPage != 0 {
		totalPages++
	}

	return dto.Pagination{
		Page:       page,
		PerPage:    SearchPerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
