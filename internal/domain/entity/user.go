package entity

import "time"

// User is the aggregate root for the account domain. Password holds a
// bcrypt hash. RefreshToken is the single currently valid refresh token;
// empty means the user is logged out everywhere.
type User struct {
	ID            string
	Username      string
	Email         string
	FullName      string
	AvatarURL     string
	CoverImageURL string
	Password      string
	RefreshToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnerInfo is the minimal projection of a user attached to videos,
// comments and subscriber lists. Never carries credentials.
type OwnerInfo struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar"`
}

// Public returns the user without sensitive fields for API responses.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"fullName":   u.FullName,
		"avatar":     u.AvatarURL,
		"coverImage": u.CoverImageURL,
		"createdAt":  u.CreatedAt,
		"updatedAt":  u.UpdatedAt,
	}
}

func (u *User) Owner() OwnerInfo {
	return OwnerInfo{ID: u.ID, Username: u.Username, FullName: u.FullName, AvatarURL: u.AvatarURL}
}
