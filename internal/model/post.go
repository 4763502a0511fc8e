package model

import "time"

// Post is the content unit of every timeline. GroupID is nullable: an
// ungrouped post shows up in the global, profile and follow views but
// never in a group view. CreatedAt is set once at creation and drives
// the newest-first ordering everywhere.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string    `json:"author_id" gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	GroupID   *string   `json:"group_id" gorm:"type:varchar(36);index:idx_post_group"`
	Group     *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Image     string    `json:"image,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_post_created"`
	UpdatedAt time.Time `json:"-"`
}

func (Post) TableName() string { return "posts" }
