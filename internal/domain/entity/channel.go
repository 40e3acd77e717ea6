package entity

// ChannelProfile is the aggregated public view of a user's channel:
// subscription edge counts in both directions plus the viewer's own
// membership in the subscriber set.
type ChannelProfile struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	AvatarURL         string  `json:"avatar"`
	CoverImageURL     string  `json:"coverImage"`
	SubscriberCount   int64   `json:"subscribersCount"`
	SubscribedToCount int64   `json:"channelsSubscribedToCount"`
	IsSubscribed      bool    `json:"isSubscribed"`
	Videos            []Video `json:"videos"`
}

// ChannelStats aggregates across every video owned by a channel.
type ChannelStats struct {
	TotalViews             int64   `json:"totalViews"`
	TotalLikes             int64   `json:"totalLikes"`
	TotalComments          int64   `json:"totalComments"`
	TotalVideos            int64   `json:"totalVideos"`
	TotalSubscribers       int64   `json:"totalSubscribers"`
	TotalDuration          float64 `json:"totalDuration"`
	AvgSubscribersPerVideo float64 `json:"avgSubscribersPerVideo"`
}
