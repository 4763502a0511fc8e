package service

import (
	"context"

	"github.com/inkwell-social/inkwell/internal/repository"
)

// FollowService mutates the follow graph on behalf of an authenticated
// follower. Follow is idempotent and ignores self-follows; Unfollow is
// deliberately not idempotent and reports a missing edge as ErrNotFound.
type FollowService interface {
	Follow(ctx context.Context, followerID, username string) error
	Unfollow(ctx context.Context, followerID, username string) error
	IsFollowing(ctx context.Context, followerID, authorID string) (bool, error)
}

type followService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) FollowService {
	return &followService{follows: follows, users: users}
}

func (s *followService) Follow(ctx context.Context, followerID, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return notFound(err)
	}
	if author.ID == followerID {
		// Following yourself is silently ignored.
		return nil
	}
	// Insert first instead of check-then-insert: the unique pair index
	// turns a concurrent duplicate into a no-op.
	return s.follows.Create(ctx, followerID, author.ID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return notFound(err)
	}
	deleted, err := s.follows.Delete(ctx, followerID, author.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, authorID)
}
