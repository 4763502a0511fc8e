package model

import (
	"time"
)

// Follow is a directed edge: FollowerID receives AuthorID's posts in
// their personalized feed.
type Follow struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FollowerID string `json:"follower_id" gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	AuthorID   string `json:"author_id" gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
	// idx_follow_pair = (follower_id, author_id), keeps the edge unique
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Follow) TableName() string { return "follows" }
