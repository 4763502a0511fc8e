package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostResolvesGroupBySlug(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)
	ctx := context.Background()

	a := f.user(t, "a")
	news := f.group(t, "news")

	post, err := svc.Create(ctx, a.ID, PostInput{Text: "hello", GroupSlug: "news"})
	require.NoError(t, err)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, news.ID, *post.GroupID)
	assert.Equal(t, a.ID, post.AuthorID)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)

	a := f.user(t, "a")
	_, err := svc.Create(context.Background(), a.ID, PostInput{Text: "x", GroupSlug: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditByNonAuthorIsForbidden(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)
	ctx := context.Background()

	a := f.user(t, "a")
	b := f.user(t, "b")
	post := f.post(t, a, nil, "original", time.Now())

	_, err := svc.Edit(ctx, b.ID, post.ID, PostInput{Text: "hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Text)
}

func TestEditKeepsCreatedAt(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)
	ctx := context.Background()

	a := f.user(t, "a")
	created := time.Now().Add(-time.Hour).Truncate(time.Second)
	post := f.post(t, a, nil, "original", created)

	edited, err := svc.Edit(ctx, a.ID, post.ID, PostInput{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)
	assert.True(t, edited.CreatedAt.Equal(created))
}

func TestEditCanDetachGroup(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)
	ctx := context.Background()

	a := f.user(t, "a")
	news := f.group(t, "news")
	post := f.post(t, a, news, "grouped", time.Now())

	edited, err := svc.Edit(ctx, a.ID, post.ID, PostInput{Text: "grouped"})
	require.NoError(t, err)
	assert.Nil(t, edited.GroupID)
}

func TestEditUnknownPost(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)

	a := f.user(t, "a")
	_, err := svc.Edit(context.Background(), a.ID, "no-such-id", PostInput{Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	f := setup(t)
	svc := NewPostService(f.posts, f.groups)
	ctx := context.Background()

	a := f.user(t, "a")
	b := f.user(t, "b")
	post := f.post(t, a, nil, "mine", time.Now())

	err := svc.Delete(ctx, b.ID, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, a.ID, post.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentToUnknownPost(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.comments, f.posts)

	a := f.user(t, "a")
	_, err := svc.Add(context.Background(), a.ID, "no-such-id", "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentsNewestFirst(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := context.Background()

	a := f.user(t, "a")
	post := f.post(t, a, nil, "p", time.Now().Add(-time.Hour))

	first, err := svc.Add(ctx, a.ID, post.ID, "first")
	require.NoError(t, err)
	second, err := svc.Add(ctx, a.ID, post.ID, "second")
	require.NoError(t, err)

	comments, err := svc.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
}
