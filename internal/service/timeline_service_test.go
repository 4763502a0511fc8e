package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-social/inkwell/pkg/response"
)

func setupTimeline(t *testing.T) (*fixtures, *miniredis.Miniredis, TimelineService) {
	t.Helper()
	f := setup(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	svc := NewTimelineService(f.feed(10), rdb, 20*time.Second)
	return f, mr, svc
}

func TestCachedBodyIsStableWithinTTL(t *testing.T) {
	f, _, svc := setupTimeline(t)
	ctx := context.Background()

	a := f.user(t, "a")
	f.post(t, a, nil, "first", time.Now().Add(-time.Minute))

	before, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)

	// a post created inside the window is invisible to everyone,
	// its author included
	f.post(t, a, nil, "second", time.Now())

	after, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestClearCacheMakesNewPostVisible(t *testing.T) {
	f, _, svc := setupTimeline(t)
	ctx := context.Background()

	a := f.user(t, "a")
	f.post(t, a, nil, "first", time.Now().Add(-time.Minute))

	_, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)

	f.post(t, a, nil, "second", time.Now())
	require.NoError(t, svc.ClearCache(ctx))

	body, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, string(body), "second")
}

func TestTTLExpiryRefreshesBody(t *testing.T) {
	f, mr, svc := setupTimeline(t)
	ctx := context.Background()

	a := f.user(t, "a")
	f.post(t, a, nil, "first", time.Now().Add(-time.Minute))

	_, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)

	f.post(t, a, nil, "second", time.Now())
	mr.FastForward(21 * time.Second)

	body, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, string(body), "second")
}

func TestLaterPagesBypassCache(t *testing.T) {
	f, _, svc := setupTimeline(t)
	ctx := context.Background()

	a := f.user(t, "a")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 11; i++ {
		f.post(t, a, nil, "post", base.Add(time.Duration(i)*time.Second))
	}

	_, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)

	body, err := svc.RenderGlobal(ctx, 2)
	require.NoError(t, err)

	var env response.Response
	require.NoError(t, json.Unmarshal(body, &env))
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)

	var timeline Timeline
	require.NoError(t, json.Unmarshal(data, &timeline))
	assert.Equal(t, 2, timeline.Page.Number)
	assert.Len(t, timeline.Posts, 1)
}

func TestRenderedBodyIsValidEnvelope(t *testing.T) {
	f, _, svc := setupTimeline(t)
	ctx := context.Background()

	a := f.user(t, "a")
	f.post(t, a, nil, "hello", time.Now())

	body, err := svc.RenderGlobal(ctx, 1)
	require.NoError(t, err)

	var env response.Response
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, 200, env.Code)
	assert.Equal(t, "ok", env.Message)
}
