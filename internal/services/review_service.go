package services

import (
	"modelboard_backend/internal/dto"
	"modelboard_backend/internal/models"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/pkg/apperrors"
)

const reviewsPerPage = 20

// ReviewService creates and lists model reviews.
type ReviewService interface {
	SubmitReview(req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	GetModelReviews(modelID uint, page int) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, profileRepo repositories.ProfileRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
	}
}

func (s *reviewService) SubmitReview(req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.profileRepo.FindModelProfileByID(req.ModelID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, apperrors.ErrDatabase(err)
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}

	review := &models.Review{
		ModelID:     req.ModelID,
		AuthorName:  req.AuthorName,
		AuthorPhone: req.AuthorPhone,
		Rating:      rating,
		ReviewText:  req.ReviewText,
		// Reviews are marked verified on creation regardless of input; a
		// moderation workflow would flip this to a pending state.
		IsVerified: true,
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) GetModelReviews(modelID uint, page int) (*dto.ReviewListResponse, error) {
	// Same existence contract as SubmitReview: an unknown model is a 404,
	// not an empty list.
	if _, err := s.profileRepo.FindModelProfileByID(modelID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if page < 1 {
		page = 1
	}

	reviews, total, err := s.reviewRepo.FindReviewsByModelID(modelID, page, reviewsPerPage)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, *toReviewResponse(&reviews[i]))
	}

	totalPages := int(total) / reviewsPerPage
	if int(total)%reviewsPerPage != 0 {
		totalPages++
	}

	return &dto.ReviewListResponse{
		Reviews:    items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func toReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         review.ID,
		ModelID:    review.ModelID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
	}
}
