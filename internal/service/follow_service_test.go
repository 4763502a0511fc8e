package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-social/inkwell/internal/model"
)

func (f *fixtures) edgeCount(t *testing.T) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, f.db.Model(&model.Follow{}).Count(&cnt).Error)
	return cnt
}

func TestFollowTwiceLeavesOneEdge(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)
	ctx := context.Background()

	u := f.user(t, "u")
	f.user(t, "t")

	require.NoError(t, svc.Follow(ctx, u.ID, "t"))
	require.NoError(t, svc.Follow(ctx, u.ID, "t"))
	assert.EqualValues(t, 1, f.edgeCount(t))
}

func TestSelfFollowIsSilentNoOp(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)

	u := f.user(t, "u")
	require.NoError(t, svc.Follow(context.Background(), u.ID, "u"))
	assert.Zero(t, f.edgeCount(t))
}

func TestFollowUnknownTarget(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)

	u := f.user(t, "u")
	err := svc.Follow(context.Background(), u.ID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollowAsymmetry(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)
	ctx := context.Background()

	u := f.user(t, "u")
	f.user(t, "t")

	// unfollow without an edge is an error, unlike follow
	err := svc.Unfollow(ctx, u.ID, "t")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Follow(ctx, u.ID, "t"))
	require.NoError(t, svc.Unfollow(ctx, u.ID, "t"))
	assert.Zero(t, f.edgeCount(t))

	// the edge is gone, a second unfollow fails again
	err = svc.Unfollow(ctx, u.ID, "t")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollowUnknownTarget(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)

	u := f.user(t, "u")
	err := svc.Unfollow(context.Background(), u.ID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsFollowing(t *testing.T) {
	f := setup(t)
	svc := NewFollowService(f.follows, f.users)
	ctx := context.Background()

	u := f.user(t, "u")
	target := f.user(t, "t")

	ok, err := svc.IsFollowing(ctx, u.ID, target.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Follow(ctx, u.ID, "t"))
	ok, err = svc.IsFollowing(ctx, u.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
