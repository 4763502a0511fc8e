package service

import (
	"context"

	"github.com/inkwell-social/inkwell/internal/model"
	"github.com/inkwell-social/inkwell/internal/repository"
)

type CommentService interface {
	// Add fails with ErrNotFound for an unknown post id.
	Add(ctx context.Context, authorID, postID, text string) (*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func (s *commentService) Add(ctx context.Context, authorID, postID, text string) (*model.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFound(err)
	}
	comment := &model.Comment{
		PostID:   &post.ID,
		AuthorID: &authorID,
		Text:     text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
