package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-social/inkwell/internal/model"
)

// PostRepository serves every timeline scope. All listings share one
// ordering: created_at descending, id as a tiebreaker so pages stay
// stable when two posts land on the same timestamp.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post and detaches its comments
	// (comments.post_id goes null) in one transaction.
	Delete(ctx context.Context, id string) error

	ListAll(ctx context.Context, offset, limit int) ([]model.Post, error)
	CountAll(ctx context.Context) (int64, error)
	ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]model.Post, error)
	CountByGroup(ctx context.Context, groupID string) (int64, error)
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]model.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	// ListFollowed selects posts whose author is followed by followerID,
	// via a join over the follows table.
	ListFollowed(ctx context.Context, followerID string, offset, limit int) ([]model.Post, error)
	CountFollowed(ctx context.Context, followerID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	// Select the mutable columns only; created_at stays immutable.
	return r.db.WithContext(ctx).Model(post).
		Select("text", "image", "group_id", "updated_at").
		Updates(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Comment{}).
			Where("post_id = ?", id).
			Update("post_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}

func (r *postRepository) listing(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Post{}).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]model.Post, error) {
	var res []model.Post
	err := r.listing(ctx).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]model.Post, error) {
	var res []model.Post
	err := r.listing(ctx).
		Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("group_id = ?", groupID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]model.Post, error) {
	var res []model.Post
	err := r.listing(ctx).
		Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ?", authorID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListFollowed(ctx context.Context, followerID string, offset, limit int) ([]model.Post, error) {
	var res []model.Post
	err := r.listing(ctx).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.follower_id = ?", followerID).
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) CountFollowed(ctx context.Context, followerID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.follower_id = ?", followerID).
		Count(&cnt).Error
	return cnt, err
}
