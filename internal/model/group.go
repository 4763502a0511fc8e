package model

import "time"

// Group is a topical category a post can optionally belong to.
type Group struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug        string    `json:"slug" gorm:"type:varchar(64);uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (Group) TableName() string { return "groups" }
