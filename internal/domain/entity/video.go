package entity

import "time"

type Video struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"ownerId"`
	VideoURL     string     `json:"videoFile"`
	ThumbnailURL string     `json:"thumbnail"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     float64    `json:"duration"`
	Views        int64      `json:"views"`
	IsPublished  bool       `json:"isPublished"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Owner        *OwnerInfo `json:"owner,omitempty"`
}

// VideoDetail is a video enriched with viewer-relative engagement facts,
// derived by joins rather than denormalized counters.
type VideoDetail struct {
	Video
	LikeCount          int64 `json:"likeCount"`
	ViewerHasLiked     bool  `json:"viewerHasLiked"`
	SubscriberCount    int64 `json:"subscriberCount"`
	ViewerIsSubscribed bool  `json:"viewerIsSubscribed"`
}
