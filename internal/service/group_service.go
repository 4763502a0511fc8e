package service

import (
	"context"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
)

type GroupService interface {
	Create(ctx context.Context, group *model.Group) error
	// Delete removes the group; its posts survive ungrouped.
	Delete(ctx context.Context, slug string) error
}

type groupService struct {
	groups repository.GroupRepository
}

func NewGroupService(groups repository.GroupRepository) GroupService {
	return &groupService{groups: groups}
}

func (s *groupService) Create(ctx context.Context, group *model.Group) error {
	return s.groups.Create(ctx, group)
}

func (s *groupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return notFound(err)
	}
	return s.groups.Delete(ctx, group.ID)
}
