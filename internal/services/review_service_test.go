package services_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/models"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/internal/services"
	"modelboard_backend/pkg/apperrors"
)

type reviewRepoStub struct {
	created []*models.Review
	stored  []models.Review
}

func (s *reviewRepoStub) CreateReview(review *models.Review) error {
	review.ID = uint(len(s.created) + 1)
	review.CreatedAt = time.Now()
	s.created = append(s.created, review)
	return nil
}

func (s *reviewRepoStub) FindReviewsByModelID(modelID uint, page, perPage int) ([]models.Review, int64, error) {
	return s.stored, int64(len(s.stored)), nil
}

type modelLookupStub struct {
	repositories.ProfileRepository
	knownModelID uint
}

func (s *modelLookupStub) FindModelProfileByID(id uint) (*models.ModelProfile, error) {
	if id == s.knownModelID {
		return &models.ModelProfile{ID: id}, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func TestSubmitReview(t *testing.T) {
	t.Run("rating defaults to 5 and verification is forced on", func(t *testing.T) {
		reviews := &reviewRepoStub{}
		svc := services.NewReviewService(reviews, &modelLookupStub{knownModelID: 3})

		response, err := svc.SubmitReview(&dto.SubmitReviewRequest{
			ModelID:    3,
			AuthorName: strPtr("Сергей"),
		})
		require.NoError(t, err)

		require.Len(t, reviews.created, 1)
		assert.Equal(t, 5, reviews.created[0].Rating)
		assert.True(t, reviews.created[0].IsVerified)
		assert.Equal(t, uint(3), response.ModelID)
		assert.Equal(t, 5, response.Rating)
	})

	t.Run("caller cannot opt out of verification", func(t *testing.T) {
		// The wire format has no isVerified field at all; this documents
		// that the stored flag is always true.
		reviews := &reviewRepoStub{}
		svc := services.NewReviewService(reviews, &modelLookupStub{knownModelID: 3})

		_, err := svc.SubmitReview(&dto.SubmitReviewRequest{ModelID: 3, Rating: intPtr(1)})
		require.NoError(t, err)
		assert.True(t, reviews.created[0].IsVerified)
		assert.Equal(t, 1, reviews.created[0].Rating)
	})

	t.Run("unknown model yields 404", func(t *testing.T) {
		reviews := &reviewRepoStub{}
		svc := services.NewReviewService(reviews, &modelLookupStub{knownModelID: 3})

		_, err := svc.SubmitReview(&dto.SubmitReviewRequest{ModelID: 999})
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
		assert.Empty(t, reviews.created)
	})
}

func TestGetModelReviews(t *testing.T) {
	t.Run("returns the page for a known model", func(t *testing.T) {
		reviews := &reviewRepoStub{
			stored: []models.Review{
				{ID: 1, ModelID: 3, Rating: 5},
				{ID: 2, ModelID: 3, Rating: 4},
			},
		}
		svc := services.NewReviewService(reviews, &modelLookupStub{knownModelID: 3})

		response, err := svc.GetModelReviews(3, 0) // page below 1 clamps to 1
		require.NoError(t, err)

		assert.Equal(t, 1, response.Page)
		assert.Equal(t, int64(2), response.Total)
		assert.Equal(t, 1, response.TotalPages)
		require.Len(t, response.Reviews, 2)
		assert.Equal(t, uint(1), response.Reviews[0].ID)
	})

	t.Run("unknown model yields 404, not an empty list", func(t *testing.T) {
		reviews := &reviewRepoStub{}
		svc := services.NewReviewService(reviews, &modelLookupStub{knownModelID: 3})

		_, err := svc.GetModelReviews(999, 1)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	})
}
