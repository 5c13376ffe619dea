// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
// Username and email are stored lowercase; uniqueness is enforced by the
// database so two concurrent signups cannot both succeed.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;size:254;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	DisplayName  string         `json:"display_name"`
	Bio          string         `gorm:"size:160" json:"bio"`
	Location     string         `json:"location"`
	Website      string         `json:"website"`
	ProfileImage string         `json:"profile_image"`
	HeaderImage  string         `json:"header_image"`
	Verified     bool           `gorm:"default:false" json:"verified"`
	Enabled      bool           `gorm:"default:true" json:"enabled"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// BeforeCreate assigns the UUID primary key and defaults the display name
// to the username.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	return nil
}
