package apperrors

import (
	"net/http"
)

// Factories for errors originating in repositories and services.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrDatabase wraps a storage failure into a 500 with a generic message.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage", "Internal server error", http.StatusInternalServerError)
}

// ErrModelNotFound is returned when a review references a model that does
// not exist.
var ErrModelNotFound = New(
	CodeNotFound,
	"reviews",
	"Model not found",
	http.StatusNotFound,
)
