package repository

import "errors"

// Sentinel errors shared by the repository implementations. Services match on
// these instead of gorm internals.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateReview = errors.New("review already exists for this user and watchlist")
)
