package service

import (
	"context"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
	"github.com/inkwell-social/inkwell/pkg/pagination"
)

// Timeline is one page of a reverse-chronological post listing.
type Timeline struct {
	Posts []model.Post    `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// FeedService selects the candidate post sequence for each of the four
// view kinds and slices it into pages. Selection is read-only; no
// viewer-based filtering happens in any view, and an ungrouped post is
// visible everywhere except group views.
type FeedService interface {
	Global(ctx context.Context, page int) (*Timeline, error)
	// ByGroup fails with ErrNotFound when no group has the slug.
	ByGroup(ctx context.Context, slug string, page int) (*model.Group, *Timeline, error)
	// ByAuthor fails with ErrNotFound when no user has the username.
	ByAuthor(ctx context.Context, username string, page int) (*model.User, *Timeline, error)
	// ByFollowGraph lists posts by every author the viewer follows.
	// Callers must only pass an authenticated viewer.
	ByFollowGraph(ctx context.Context, viewerID string, page int) (*Timeline, error)
}

type feedService struct {
	posts    repository.PostRepository
	groups   repository.GroupRepository
	users    repository.UserRepository
	pageSize int
}

func NewFeedService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	pageSize int,
) FeedService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &feedService{posts: posts, groups: groups, users: users, pageSize: pageSize}
}

func (s *feedService) Global(ctx context.Context, page int) (*Timeline, error) {
	total, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pg := pagination.New(total, page, s.pageSize)
	items, err := s.posts.ListAll(ctx, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, err
	}
	return &Timeline{Posts: items, Page: pg}, nil
}

func (s *feedService) ByGroup(ctx context.Context, slug string, page int) (*model.Group, *Timeline, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, notFound(err)
	}
	total, err := s.posts.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	pg := pagination.New(total, page, s.pageSize)
	items, err := s.posts.ListByGroup(ctx, group.ID, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, nil, err
	}
	return group, &Timeline{Posts: items, Page: pg}, nil
}

func (s *feedService) ByAuthor(ctx context.Context, username string, page int) (*model.User, *Timeline, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, notFound(err)
	}
	total, err := s.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	pg := pagination.New(total, page, s.pageSize)
	items, err := s.posts.ListByAuthor(ctx, author.ID, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, nil, err
	}
	return author, &Timeline{Posts: items, Page: pg}, nil
}

func (s *feedService) ByFollowGraph(ctx context.Context, viewerID string, page int) (*Timeline, error) {
	total, err := s.posts.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	pg := pagination.New(total, page, s.pageSize)
	items, err := s.posts.ListFollowed(ctx, viewerID, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, err
	}
	return &Timeline{Posts: items, Page: pg}, nil
}
