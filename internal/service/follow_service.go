package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"gorm.io/gorm"
)

// FollowService manages follow relations. Follower/following lists are
// cached in redis as JSON blobs for an hour and invalidated on change;
// the cache is best-effort and any redis failure falls through to MySQL.
type FollowService struct {
	Follows FollowStore
	Users   UserStore
	Redis   *redis.Client
}

func NewFollowService(follows FollowStore, users UserStore, rdb *redis.Client) *FollowService {
	return &FollowService{Follows: follows, Users: users, Redis: rdb}
}

// FollowUserInfo is the list entry payload.
type FollowUserInfo struct {
	UserID          uint   `json:"userId"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type FollowCounts struct {
	Followers  int64 `json:"followers"`
	Followings int64 `json:"followings"`
}

func (s *FollowService) Follow(userID, targetID uint) error {
	if userID == targetID {
		return util.ErrCannotFollowSelf
	}

	if _, err := s.Users.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	exists, err := s.Follows.Exists(userID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrAlreadyFollowing
	}

	if err := s.Follows.Create(&model.Follow{FollowerID: userID, FollowingID: targetID}); err != nil {
		return err
	}
	s.invalidate(userID, targetID)
	return nil
}

func (s *FollowService) Unfollow(userID, targetID uint) error {
	deleted, err := s.Follows.Delete(userID, targetID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.ErrFollowNotFound
	}
	s.invalidate(userID, targetID)
	return nil
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]FollowUserInfo, error) {
	key := fmt.Sprintf("%s%d", util.FollowerListPrefix, userID)
	return s.cachedList(ctx, key, func() ([]model.User, error) {
		return s.Follows.FindFollowers(userID)
	})
}

func (s *FollowService) Followings(ctx context.Context, userID uint) ([]FollowUserInfo, error) {
	key := fmt.Sprintf("%s%d", util.FollowingListPrefix, userID)
	return s.cachedList(ctx, key, func() ([]model.User, error) {
		return s.Follows.FindFollowings(userID)
	})
}

func (s *FollowService) Counts(userID uint) (FollowCounts, error) {
	followers, err := s.Follows.CountFollowers(userID)
	if err != nil {
		return FollowCounts{}, err
	}
	followings, err := s.Follows.CountFollowings(userID)
	if err != nil {
		return FollowCounts{}, err
	}
	return FollowCounts{Followers: followers, Followings: followings}, nil
}

func (s *FollowService) cachedList(ctx context.Context, key string, load func() ([]model.User, error)) ([]FollowUserInfo, error) {
	if s.Redis != nil {
		raw, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var cached []FollowUserInfo
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("follow cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	users, err := load()
	if err != nil {
		return nil, err
	}

	list := make([]FollowUserInfo, 0, len(users))
	for _, u := range users {
		list = append(list, FollowUserInfo{
			UserID:          u.ID,
			Nickname:        u.Nickname,
			ProfileImageURL: u.ProfileImageURL,
		})
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(list); err == nil {
			if err := s.Redis.Set(ctx, key, raw, util.FollowCacheTTL).Err(); err != nil {
				logger.Log.Warn("follow cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return list, nil
}

// invalidate drops the cached lists both sides of the relation can see.
func (s *FollowService) invalidate(userID, targetID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	keys := []string{
		fmt.Sprintf("%s%d", util.FollowingListPrefix, userID),
		fmt.Sprintf("%s%d", util.FollowerListPrefix, targetID),
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("follow cache invalidation failed", zap.Error(err))
	}
}
