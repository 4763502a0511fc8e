package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers unknown slugs, usernames, post ids and
	// unfollowing an edge that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks a non-author trying to edit a post. The web
	// layer turns it into a silent redirect, never an error page.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned by login on a bad username or
	// password, without telling which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned by register on a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
)

// notFound maps the store's missing-record error onto the service
// taxonomy and passes everything else through.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
