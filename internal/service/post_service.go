package service

import (
	"context"
	"strings"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
)

// PostInput carries the author-editable fields of a post. GroupSlug
// empty means no group; on edit it detaches the post from its group.
type PostInput struct {
	Text      string
	GroupSlug string
	Image     string
}

type PostService interface {
	Create(ctx context.Context, authorID string, in PostInput) (*model.Post, error)
	// Edit fails with ErrForbidden when actorID is not the author and
	// with ErrNotFound for an unknown post id. CreatedAt never changes.
	Edit(ctx context.Context, actorID, postID string, in PostInput) (*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Delete(ctx context.Context, actorID, postID string) error
}

type postService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
}

func NewPostService(posts repository.PostRepository, groups repository.GroupRepository) PostService {
	return &postService{posts: posts, groups: groups}
}

func (s *postService) resolveGroup(ctx context.Context, slug string) (*string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err)
	}
	return &group.ID, nil
}

func (s *postService) Create(ctx context.Context, authorID string, in PostInput) (*model.Post, error) {
	groupID, err := s.resolveGroup(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     in.Text,
		Image:    in.Image,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

func (s *postService) Edit(ctx context.Context, actorID, postID string, in PostInput) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFound(err)
	}
	if post.AuthorID != actorID {
		return nil, ErrForbidden
	}
	groupID, err := s.resolveGroup(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}
	post.Text = in.Text
	post.Image = in.Image
	post.GroupID = groupID
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, actorID, postID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return notFound(err)
	}
	if post.AuthorID != actorID {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}
