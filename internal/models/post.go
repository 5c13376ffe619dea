package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a post, reply, or repost.
// IsReply/ParentID and IsRepost/OriginalPostID are set together or not at
// all, and a post is never both. LikeCount, ReplyCount and RepostCount are
// denormalized counters maintained in the same transaction as the write
// that creates or removes the counted child record.
type Post struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"user"`
	Content        string         `gorm:"size:280;not null" json:"content"`
	Media          []string       `gorm:"serializer:json" json:"media"`
	IsReply        bool           `gorm:"default:false" json:"is_reply"`
	ParentID       *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsRepost       bool           `gorm:"default:false" json:"is_repost"`
	OriginalPostID *uuid.UUID     `gorm:"type:uuid;index" json:"original_post_id,omitempty"`
	Hashtags       []Hashtag      `gorm:"many2many:post_hashtags" json:"hashtags"`
	LikeCount      int            `gorm:"default:0" json:"like_count"`
	ReplyCount     int            `gorm:"default:0" json:"reply_count"`
	RepostCount    int            `gorm:"default:0" json:"repost_count"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the UUID primary key.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Hashtag is a normalized (lowercase) tag shared by many posts.
type Hashtag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns the UUID primary key.
func (h *Hashtag) BeforeCreate(_ *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
