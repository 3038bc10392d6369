package models

import "time"

// User represents an account in the system. The campaign core only ever
// reads ID and Email; the rest exists for the auth flow.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Name *string `json:"name,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// Bumped on password change to invalidate outstanding tokens.
	TokenVersion int `gorm:"default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaigns []Campaign `gorm:"foreignKey:UserID" json:"campaigns,omitempty"`
}

// RefreshToken records an issued refresh token so it can be revoked.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string `gorm:"not null;uniqueIndex" json:"-"`

	UserAgent string `json:"user_agent"`
	IP        string `json:"ip"`

	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
