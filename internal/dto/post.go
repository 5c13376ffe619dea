package dto

import (
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/google/uuid"
)

// PostDto is the public shape of a post. The author is embedded as a
// summary and hashtags are flattened to their names.
type PostDto struct {
	ID             uuid.UUID   `json:"id"`
	Author         UserSummary `json:"author"`
	Content        string      `json:"content"`
	Media          []string    `json:"media,omitempty"`
	IsReply        bool        `json:"is_reply"`
	ParentID       *uuid.UUID  `json:"parent_id,omitempty"`
	IsRepost       bool        `json:"is_repost"`
	OriginalPostID *uuid.UUID  `json:"original_post_id,omitempty"`
	Hashtags       []string    `json:"hashtags"`
	LikeCount      int         `json:"like_count"`
	ReplyCount     int         `json:"reply_count"`
	RepostCount    int         `json:"repost_count"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewPostDto maps a post with its preloaded author and hashtags.
func NewPostDto(p *models.Post) PostDto {
	tags := make([]string, 0, len(p.Hashtags))
	for _, h := range p.Hashtags {
		tags = append(tags, h.Name)
	}
	return PostDto{
		ID:             p.ID,
		Author:         NewUserSummary(&p.User),
		Content:        p.Content,
		Media:          p.Media,
		IsReply:        p.IsReply,
		ParentID:       p.ParentID,
		IsRepost:       p.IsRepost,
		OriginalPostID: p.OriginalPostID,
		Hashtags:       tags,
		LikeCount:      p.LikeCount,
		ReplyCount:     p.ReplyCount,
		RepostCount:    p.RepostCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewPostPage maps a page of posts into its outward form, preserving the
// pagination envelope.
func NewPostPage(page models.Page[*models.Post]) models.Page[PostDto] {
	return models.MapPage(page, NewPostDto)
}

// NewUserSummaryPage maps a page of users into embedded summaries, used
// for follower and following listings.
func NewUserSummaryPage(page models.Page[*models.User]) models.Page[UserSummary] {
	return models.MapPage(page, NewUserSummary)
}
