package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell-social/inkwell/internal/model"
)

type FollowRepository interface {
	// Create inserts the (follower, author) edge. A duplicate insert is
	// a no-op: the unique pair index absorbs the conflict, so two
	// concurrent identical requests never surface an error.
	Create(ctx context.Context, followerID, authorID string) error
	// Delete removes the edge and reports whether one existed.
	Delete(ctx context.Context, followerID, authorID string) (bool, error)
	Exists(ctx context.Context, followerID, authorID string) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, authorID string) error {
	f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, AuthorID: authorID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, authorID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, authorID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
