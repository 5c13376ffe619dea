// Package dto defines the outward representations of domain entities and
// the pure mapping functions that produce them. Nothing in this package
// touches storage; aggregate figures such as follower counts are computed
// by callers and injected.
package dto

import (
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
)

// UserDto is the public shape of a user. Credentials never appear here.
type UserDto struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	HeaderImage    string    `json:"header_image,omitempty"`
	Verified       bool      `json:"verified"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUserDto maps a user plus its injected social-graph counts.
func NewUserDto(u *models.User, followers, following int64) UserDto {
	return UserDto{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Bio:            u.Bio,
		Location:       u.Location,
		Website:        u.Website,
		ProfileImage:   u.ProfileImage,
		HeaderImage:    u.HeaderImage,
		Verified:       u.Verified,
		FollowerCount:  followers,
		FollowingCount: following,
		CreatedAt:      u.CreatedAt,
	}
}

// UserSummary is the compact author shape embedded in post responses and
// follower listings.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Verified     bool      `json:"verified"`
}

// NewUserSummary maps a user to its embedded form.
func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		ProfileImage: u.ProfileImage,
		Verified:     u.Verified,
	}
}
