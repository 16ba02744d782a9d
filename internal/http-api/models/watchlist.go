package models

import "time"

type WatchList struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"not null;size:200"`
	Storyline    string    `json:"storyline" gorm:"size:500"`
	Active       bool      `json:"active" gorm:"default:true"`
	PlatformID   *int64    `json:"platform_id,omitempty" gorm:"index"`
	AvgRating    float64   `json:"avg_rating" gorm:"default:0"`
	NumberRating int       `json:"number_rating" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Association
	Platform *StreamPlatform `json:"platform,omitempty" gorm:"foreignKey:PlatformID"`
}

// ApplyRating folds a new rating into the running aggregate. The first rating
// becomes the average outright; every later one is blended with the prior
// average rather than averaged across all ratings. The blend is the historical
// behavior and callers rely on it staying exactly this way.
func (w *WatchList) ApplyRating(rating int) {
	if w.NumberRating == 0 {
		w.AvgRating = float64(rating)
	} else {
		w.AvgRating = (float64(rating) + w.AvgRating) / 2
	}
	w.NumberRating++
}

func (WatchList) TableName() string {
	return "watchlist"
}
