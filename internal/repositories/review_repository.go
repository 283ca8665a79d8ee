package repositories

import (
	"gorm.io/gorm"

	"modelboard_backend/internal/models"
)

// ReviewRepository persists and lists model reviews.
type ReviewRepository interface {
	CreateReview(review *models.Review) error
	FindReviewsByModelID(modelID uint, page, perPage int) ([]models.Review, int64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewsByModelID(modelID uint, page, perPage int) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).Where("model_id = ?", modelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&reviews).Error

	return reviews, total, err
}
