package dto

import "time"

// SubmitReviewRequest is the review submission payload. Rating defaults to
// 5 when omitted.
type SubmitReviewRequest struct {
	ModelID     uint    `json:"modelId" validate:"required,min=1"`
	AuthorName  *string `json:"authorName" validate:"omitempty,max=255"`
	AuthorPhone *string `json:"authorPhone" validate:"omitempty,max=32"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ReviewText  *string `json:"reviewText"`
}

// ReviewResponse is the created-review summary.
type ReviewResponse struct {
	ID         uint      `json:"id"`
	ModelID    uint      `json:"modelId"`
	AuthorName *string   `json:"authorName"`
	Rating     int       `json:"rating"`
	ReviewText *string   `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse is a paginated review list for one model.
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}
