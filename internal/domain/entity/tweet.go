package entity

import "time"

type Tweet struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Owner     *OwnerInfo `json:"owner,omitempty"`
}
