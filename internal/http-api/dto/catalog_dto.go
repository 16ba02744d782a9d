package dto

// StreamPlatformRequest: payload for creating or updating a platform
type StreamPlatformRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	About   string `json:"about" binding:"max=500"`
	Website string `json:"website" binding:"omitempty,url,max=200"`
}

// WatchListRequest: payload for creating or updating a title
type WatchListRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Storyline  string `json:"storyline" binding:"max=500"`
	Active     *bool  `json:"active"`
	PlatformID *int64 `json:"platform_id"`
}

// IsActive defaults a missing active flag to true.
func (r *WatchListRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
