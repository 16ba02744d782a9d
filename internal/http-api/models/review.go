package models

import "time"

type Review struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating       int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Description  string    `json:"description" gorm:"size:500"`
	Active       bool      `json:"active" gorm:"default:true"`
	ReviewUserID string    `json:"review_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_watchlist"`
	WatchlistID  int64     `json:"watchlist_id" gorm:"not null;uniqueIndex:idx_review_user_watchlist"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	ReviewUser User      `json:"review_user,omitempty" gorm:"foreignKey:ReviewUserID;constraint:OnDelete:CASCADE;"`
	Watchlist  WatchList `json:"watchlist,omitempty" gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
