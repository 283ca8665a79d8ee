package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/models"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/internal/services"
)

// searchRepoStub records the criteria the service composed and returns a
// canned result set.
type searchRepoStub struct {
	repositories.ProfileRepository

	modelCriteria        *repositories.ModelSearchCriteria
	photographerCriteria *repositories.PhotographerSearchCriteria
	modelResult          []models.ModelProfile
	photographerResult   []models.PhotographerProfile
	total                int64
}

func (s *searchRepoStub) SearchModelProfiles(criteria repositories.ModelSearchCriteria) ([]models.ModelProfile, int64, error) {
	s.modelCriteria = &criteria
	return s.modelResult, s.total, nil
}

func (s *searchRepoStub) SearchPhotographerProfiles(criteria repositories.PhotographerSearchCriteria) ([]models.PhotographerProfile, int64, error) {
	s.photographerCriteria = &criteria
	return s.photographerResult, s.total, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestSearchProfiles_FilterComposition(t *testing.T) {
	t.Run("omitted city narrows to the default city", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{})
		require.NoError(t, err)
		require.NotNil(t, repo.modelCriteria)
		assert.Equal(t, "Хабаровск", repo.modelCriteria.City)
	})

	t.Run("city sentinel disables the city filter", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{City: dto.CityAny})
		require.NoError(t, err)
		assert.Empty(t, repo.modelCriteria.City)
	})

	t.Run("explicit city passes through", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{City: "Владивосток"})
		require.NoError(t, err)
		assert.Equal(t, "Владивосток", repo.modelCriteria.City)
	})

	t.Run("openness level expands to the permissiveness floor", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{OpennessLevel: "Бельё"})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"Бельё", "Гламур", "Эротика", "Ню", "Метарт", "Порно"},
			repo.modelCriteria.OpennessLevels,
		)
	})

	t.Run("unknown openness level adds no predicate", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{OpennessLevel: "Лямура"})
		require.NoError(t, err)
		assert.Empty(t, repo.modelCriteria.OpennessLevels)
	})

	t.Run("age bounds become birth-year bounds against the current year", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow) // year 2026

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{
			MinAge: intPtr(25),
			MaxAge: intPtr(40),
		})
		require.NoError(t, err)
		require.NotNil(t, repo.modelCriteria.MaxBirthYear)
		require.NotNil(t, repo.modelCriteria.MinBirthYear)
		assert.Equal(t, 2001, *repo.modelCriteria.MaxBirthYear) // minAge=25
		assert.Equal(t, 1986, *repo.modelCriteria.MinBirthYear) // maxAge=40
	})

	t.Run("page size is fixed at 20", func(t *testing.T) {
		repo := &searchRepoStub{}
		svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

		_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{Page: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, repo.modelCriteria.Page)
		assert.Equal(t, 20, repo.modelCriteria.PerPage)
	})
}

func TestSearchProfiles_TypeDispatch(t *testing.T) {
	repo := &searchRepoStub{}
	svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

	_, err := svc.SearchProfiles(&dto.SearchProfilesRequest{
		Type:           dto.ProfileTypePhotographer,
		Specialization: "свадебная съёмка",
	})
	require.NoError(t, err)
	assert.Nil(t, repo.modelCriteria)
	require.NotNil(t, repo.photographerCriteria)
	assert.Equal(t, "свадебная съёмка", repo.photographerCriteria.Specialization)
	assert.Equal(t, "Хабаровск", repo.photographerCriteria.City)
}

func TestSearchProfiles_Pagination(t *testing.T) {
	// total=45 with perPage=20 means 3 pages, the last one short.
	repo := &searchRepoStub{total: 45}
	svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

	response, err := svc.SearchProfiles(&dto.SearchProfilesRequest{Page: intPtr(3)})
	require.NoError(t, err)

	assert.Equal(t, 3, response.Pagination.Page)
	assert.Equal(t, 20, response.Pagination.PerPage)
	assert.Equal(t, int64(45), response.Pagination.Total)
	assert.Equal(t, 3, response.Pagination.TotalPages)
}

func TestSearchProfiles_ModelResultMapping(t *testing.T) {
	birth := time.Date(2000, 5, 20, 0, 0, 0, 0, time.UTC)
	lastLogin := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	repo := &searchRepoStub{
		modelResult: []models.ModelProfile{
			{
				ID:        7,
				FullName:  strPtr("Анна Иванова"),
				BirthDate: &birth,
				Height:    intPtr(175),
				City:      strPtr("Хабаровск"),
				LastLogin: &lastLogin,
			},
			{ID: 8},
		},
		total: 2,
	}
	svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

	response, err := svc.SearchProfiles(&dto.SearchProfilesRequest{})
	require.NoError(t, err)

	results, ok := response.Profiles.([]dto.ModelSearchResult)
	require.True(t, ok)
	require.Len(t, results, 2)

	assert.Equal(t, uint(7), results[0].ID)
	require.NotNil(t, results[0].Age)
	assert.Equal(t, 26, *results[0].Age) // 2026 - 2000
	require.NotNil(t, results[0].LastLogin)
	assert.Equal(t, lastLogin.Format(time.RFC3339), *results[0].LastLogin)

	// No birth date and no last login stay null, not zero values.
	assert.Nil(t, results[1].Age)
	assert.Nil(t, results[1].LastLogin)
}

func TestSearchProfiles_EmptyResultIsNotAnError(t *testing.T) {
	repo := &searchRepoStub{}
	svc := services.NewSearchService(repo, "Хабаровск", fixedNow)

	response, err := svc.SearchProfiles(&dto.SearchProfilesRequest{})
	require.NoError(t, err)

	results, ok := response.Profiles.([]dto.ModelSearchResult)
	require.True(t, ok)
	assert.Empty(t, results)
	assert.Equal(t, int64(0), response.Pagination.Total)
	assert.Equal(t, 0, response.Pagination.TotalPages)
}
