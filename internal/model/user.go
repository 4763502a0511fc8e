package model

import "time"

// User is an account that can author posts and follow other authors.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
