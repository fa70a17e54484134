package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"testing"

	"devita_backend/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService(posts ...*model.Post) (*PostService, *fakePostStore, *cache.MemoryStore) {
	store := newFakePostStore(posts...)
	mem := cache.NewMemoryStore()
	return NewPostService(store, mem), store, mem
}

func TestLikePostAccumulatesWithoutDedup(t *testing.T) {
	svc, _, _ := newTestPostService(&model.Post{BaseModel: model.BaseModel{ID: 1}})
	ctx := context.Background()

	// Same caller, three likes: all three count.
	for want := int64(1); want <= 3; want++ {
		got, err := svc.LikePost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLikePostCacheDown(t *testing.T) {
	store := newFakePostStore()
	svc := NewPostService(store, failingStore{})

	_, err := svc.LikePost(context.Background(), 1)
	assert.ErrorIs(t, err, util.ErrCacheUnavailable)
}

func TestLikePostPessimistic(t *testing.T) {
	svc, store, _ := newTestPostService(&model.Post{BaseModel: model.BaseModel{ID: 1}, Likes: 2})

	likes, err := svc.LikePostPessimistic(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), likes)
	assert.Equal(t, int64(3), store.posts[1].Likes)

	_, err = svc.LikePostPessimistic(99)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestLikePostOptimistic(t *testing.T) {
	svc, store, _ := newTestPostService(&model.Post{BaseModel: model.BaseModel{ID: 1}, Likes: 7})

	likes, err := svc.LikePostOptimistic(1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), likes)
	assert.Equal(t, int64(8), store.posts[1].Likes)
}

func TestGetPostCountsViewForOtherReaders(t *testing.T) {
	svc, store, _ := newTestPostService(&model.Post{BaseModel: model.BaseModel{ID: 1}, UserID: 2})

	post, err := svc.GetPost(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.Views)
	assert.Equal(t, int64(1), store.posts[1].Views)

	// The writer's own visits do not count.
	post, err = svc.GetPost(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.Views)
}

func TestUpdatePostOwnership(t *testing.T) {
	svc, _, _ := newTestPostService(&model.Post{BaseModel: model.BaseModel{ID: 1}, UserID: 2, Title: "hello"})

	_, err := svc.UpdatePost(1, 1, PostRequest{Title: "stolen"})
	assert.ErrorIs(t, err, util.ErrPostAccessDenied)

	_, err = svc.UpdatePost(2, 1, PostRequest{Title: "mine"})
	assert.NoError(t, err)
}

func TestDeletePostNotFound(t *testing.T) {
	svc, _, _ := newTestPostService()

	err := svc.DeletePost(1, 42)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}
