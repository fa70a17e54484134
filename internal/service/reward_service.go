package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/cache"
	"devita_backend/pkg/logger"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gorm.io/gorm"
)

// RewardService grants todo-completion rewards under per-kind daily caps.
// The cap counter lives in the cache under "{userID}:{kind}" and expires at
// the next local midnight; the durable balances live in the rewards table.
type RewardService struct {
	Rewards RewardStore
	Cache   cache.CounterStore

	// Loc is the zone daily caps roll over in.
	Loc *time.Location
	// now is swapped out in tests.
	now func() time.Time
}

func NewRewardService(rewards RewardStore, counter cache.CounterStore, loc *time.Location) *RewardService {
	return &RewardService{
		Rewards: rewards,
		Cache:   counter,
		Loc:     loc,
		now:     time.Now,
	}
}

func dailyCountKey(userID uint, kind model.MissionKind) string {
	return fmt.Sprintf("%d:%s", userID, kind)
}

// untilMidnight returns the time left until the next midnight in s.Loc,
// which is how long a freshly created daily counter lives.
func (s *RewardService) untilMidnight() time.Duration {
	now := s.now().In(s.Loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Loc).AddDate(0, 0, 1)
	return midnight.Sub(now)
}

// ProcessReward pays out the reward for completing a todo in the given
// category, unless the user already hit the kind's daily cap. A cache
// failure is an infrastructure error, never a free grant.
func (s *RewardService) ProcessReward(ctx context.Context, userID uint, categoryName string) error {
	kind := model.MissionFromCategory(categoryName)
	policy := kind.Policy()
	key := dailyCountKey(userID, kind)

	count, _, err := s.Cache.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: reading daily counter %s: %v", util.ErrCacheUnavailable, key, err)
	}
	if count >= int64(policy.DailyLimit) {
		return util.ErrDailyRewardLimitExceeded
	}

	exists, err := s.Cache.Has(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: checking daily counter %s: %v", util.ErrCacheUnavailable, key, err)
	}
	if exists {
		if _, err := s.Cache.Incr(ctx, key); err != nil {
			return fmt.Errorf("%w: incrementing daily counter %s: %v", util.ErrCacheUnavailable, key, err)
		}
	} else {
		if err := s.Cache.Set(ctx, key, 1, s.untilMidnight()); err != nil {
			return fmt.Errorf("%w: creating daily counter %s: %v", util.ErrCacheUnavailable, key, err)
		}
	}

	reward, err := s.Rewards.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		reward = &model.Reward{UserID: userID}
		if err := s.Rewards.Create(reward); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if err := reward.Apply(policy.Reward, policy.Amount); err != nil {
		return fmt.Errorf("%w: %v", util.ErrInvalidRewardValue, err)
	}

	if err := s.Rewards.Save(reward); err != nil {
		return err
	}

	logger.Log.Info("reward granted",
		zap.Uint("userID", userID),
		zap.String("kind", string(kind)),
		zap.String("reward", string(policy.Reward)),
		zap.Int("amount", policy.Amount),
	)
	return nil
}

// UseNutrition spends one nutrition point to water the plant, paying out
// experience in the same transaction. Returns the reward row id.
func (s *RewardService) UseNutrition(userID uint) (uint, error) {
	return s.Rewards.Consume(userID, util.NutritionUseExperience)
}

// GetReward returns the user's ledger balances.
func (s *RewardService) GetReward(userID uint) (*model.Reward, error) {
	reward, err := s.Rewards.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}
	return reward, nil
}
