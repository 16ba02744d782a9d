package models

type StreamPlatform struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"not null;size:100"`
	About   string `json:"about" gorm:"size:500"`
	Website string `json:"website" gorm:"size:200"`

	// Association: deleting a platform removes its titles as well
	WatchList []WatchList `json:"watchlist,omitempty" gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE;"`
}

func (StreamPlatform) TableName() string {
	return "stream_platforms"
}
