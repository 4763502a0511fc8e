package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-social/inkwell/internal/model"
)

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	// Delete removes the group and detaches its posts
	// (posts.group_id goes null) in one transaction; the posts survive.
	Delete(ctx context.Context, id string) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var g model.Group
	if err := r.db.WithContext(ctx).First(&g, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, "id = ?", id).Error
	})
}
