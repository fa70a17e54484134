package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/cache"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PostService struct {
	Posts PostStore
	Cache cache.CounterStore
}

func NewPostService(posts PostStore, counter cache.CounterStore) *PostService {
	return &PostService{Posts: posts, Cache: counter}
}

type PostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// maxOptimisticRetries bounds the conditional-update like path.
const maxOptimisticRetries = 100

func likeCountKey(postID uint) string {
	return fmt.Sprintf("%s%d", util.LikeCountKeyPrefix, postID)
}

func (s *PostService) owned(userID, postID uint) (*model.Post, error) {
	post, err := s.Posts.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, util.ErrPostAccessDenied
	}
	return post, nil
}

func (s *PostService) CreatePost(userID uint, req PostRequest) (*model.Post, error) {
	post := &model.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.Posts.Create(post); err != nil {
		return nil, err
	}
	return s.Posts.FindByID(post.ID)
}

// GetPost returns a post, counting a view when someone other than the
// writer opens it.
func (s *PostService) GetPost(viewerID, postID uint) (*model.Post, error) {
	post, err := s.Posts.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	if viewerID != post.UserID {
		if err := s.Posts.IncrementViews(postID); err != nil {
			return nil, err
		}
		post.Views++
	}
	return post, nil
}

func (s *PostService) ListPosts(page, limit int) ([]model.Post, int64, error) {
	return s.Posts.FindPage(page, limit)
}

func (s *PostService) ListMyPosts(userID uint, page, limit int) ([]model.Post, int64, error) {
	return s.Posts.FindByUserPage(userID, page, limit)
}

func (s *PostService) UpdatePost(userID, postID uint, req PostRequest) (*model.Post, error) {
	post, err := s.owned(userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description
	if err := s.Posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(userID, postID uint) error {
	if _, err := s.owned(userID, postID); err != nil {
		return err
	}
	return s.Posts.Delete(postID)
}

// LikePost is the production like path: one atomic counter increment in
// the cache, returning the new cached count. There is no per-user dedup;
// repeat likes accumulate. The durable column catches up at the nightly
// reconciliation.
func (s *PostService) LikePost(ctx context.Context, postID uint) (int64, error) {
	count, err := s.Cache.Incr(ctx, likeCountKey(postID))
	if err != nil {
		return 0, fmt.Errorf("%w: incrementing like counter: %v", util.ErrCacheUnavailable, err)
	}
	return count, nil
}

// LikePostPessimistic bumps the durable count under a SELECT ... FOR
// UPDATE row lock. Kept alongside the cache path for load comparison.
func (s *PostService) LikePostPessimistic(postID uint) (int64, error) {
	likes, err := s.Posts.IncrementLikesLocked(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, util.ErrPostNotFound
	}
	return likes, err
}

// LikePostOptimistic bumps the durable count with a bounded
// compare-and-set retry loop.
func (s *PostService) LikePostOptimistic(postID uint) (int64, error) {
	for i := 0; i < maxOptimisticRetries; i++ {
		post, err := s.Posts.FindByID(postID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrPostNotFound
		}
		if err != nil {
			return 0, err
		}

		won, err := s.Posts.CompareAndSetLikes(postID, post.Likes, post.Likes+1)
		if err != nil {
			return 0, err
		}
		if won {
			return post.Likes + 1, nil
		}
	}
	return 0, fmt.Errorf("like contention on post %d: retries exhausted", postID)
}
