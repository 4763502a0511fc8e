package model

import "time"

// Comment belongs to a post. Both PostID and AuthorID are nullable so
// deleting a post or an account detaches its comments instead of
// cascading into them.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    *string   `json:"post_id" gorm:"type:varchar(36);index:idx_comment_post"`
	AuthorID  *string   `json:"author_id" gorm:"type:varchar(36);index:idx_comment_author"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_comment_created"`
}

func (Comment) TableName() string { return "comments" }
