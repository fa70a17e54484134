package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/cache"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

type fakeRewardStore struct {
	rewards map[uint]*model.Reward
	saves   int
}

func newFakeRewardStore() *fakeRewardStore {
	return &fakeRewardStore{rewards: make(map[uint]*model.Reward)}
}

func (f *fakeRewardStore) FindByUserID(userID uint) (*model.Reward, error) {
	r, ok := f.rewards[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRewardStore) Create(reward *model.Reward) error {
	reward.ID = uint(len(f.rewards) + 1)
	copied := *reward
	f.rewards[reward.UserID] = &copied
	return nil
}

func (f *fakeRewardStore) Save(reward *model.Reward) error {
	copied := *reward
	f.rewards[reward.UserID] = &copied
	f.saves++
	return nil
}

func (f *fakeRewardStore) Consume(userID uint, experienceGain int) (uint, error) {
	r, ok := f.rewards[userID]
	if !ok {
		return 0, util.ErrRewardNotFound
	}
	if r.Nutrition <= 0 {
		return 0, util.ErrInsufficientNutrition
	}
	r.Nutrition--
	r.Experience += experienceGain
	return r.ID, nil
}

// failingStore errors on every counter operation.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (int64, bool, error) {
	return 0, false, errors.New("connection refused")
}
func (failingStore) Set(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return errors.New("connection refused")
}
func (failingStore) Incr(ctx context.Context, key string) (int64, error) {
	return 0, errors.New("connection refused")
}
func (failingStore) Del(ctx context.Context, key string) error { return errors.New("connection refused") }
func (failingStore) Has(ctx context.Context, key string) (bool, error) {
	return false, errors.New("connection refused")
}
func (failingStore) ScanPrefix(ctx context.Context, prefix string) ([]string, error) {
	return nil, errors.New("connection refused")
}

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func newTestRewardService(t *testing.T) (*RewardService, *fakeRewardStore, *cache.MemoryStore) {
	t.Helper()
	loc := seoul(t)
	store := newFakeRewardStore()
	mem := cache.NewMemoryStore()

	now := time.Date(2026, 8, 28, 22, 0, 0, 0, loc)
	mem.Now = func() time.Time { return now }

	svc := NewRewardService(store, mem, loc)
	svc.now = func() time.Time { return now }
	return svc, store, mem
}

func TestProcessRewardGrantsUpToDailyLimit(t *testing.T) {
	svc, store, _ := newTestRewardService(t)
	ctx := context.Background()

	// FREE_MISSION pays 1 nutrition, capped at 3 per day.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ProcessReward(ctx, 1, model.CategoryFreeMissionName))
	}

	err := svc.ProcessReward(ctx, 1, model.CategoryFreeMissionName)
	assert.ErrorIs(t, err, util.ErrDailyRewardLimitExceeded)
	assert.Equal(t, 3, store.rewards[1].Nutrition)
}

func TestProcessRewardLimitLeavesLedgerUntouched(t *testing.T) {
	svc, store, _ := newTestRewardService(t)
	ctx := context.Background()

	require.NoError(t, svc.ProcessReward(ctx, 1, model.CategoryDailyMissionName))
	assert.Equal(t, 3, store.rewards[1].Experience)
	savesBefore := store.saves

	err := svc.ProcessReward(ctx, 1, model.CategoryDailyMissionName)
	assert.ErrorIs(t, err, util.ErrDailyRewardLimitExceeded)
	assert.Equal(t, 3, store.rewards[1].Experience)
	assert.Equal(t, savesBefore, store.saves)
}

func TestProcessRewardUserTodoAccumulatesNutrition(t *testing.T) {
	svc, store, _ := newTestRewardService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ProcessReward(ctx, 7, "운동"))
	}
	assert.Equal(t, 30, store.rewards[7].Nutrition)
	assert.Equal(t, 0, store.rewards[7].Experience)
}

func TestProcessRewardUnknownCategoryCountsAsUserTodo(t *testing.T) {
	svc, _, mem := newTestRewardService(t)
	ctx := context.Background()

	require.NoError(t, svc.ProcessReward(ctx, 2, "no such category"))

	count, ok, err := mem.Get(ctx, "2:USER_TODO")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), count)
}

func TestProcessRewardCounterExpiresAtMidnight(t *testing.T) {
	svc, _, mem := newTestRewardService(t)
	ctx := context.Background()

	// Clock fixed at 22:00 KST, so the counter must live exactly 2h.
	require.NoError(t, svc.ProcessReward(ctx, 1, model.CategoryDailyMissionName))

	ttl, ok := mem.TTL("1:DAILY_MISSION")
	require.True(t, ok)
	assert.Equal(t, 2*time.Hour, ttl)
}

func TestProcessRewardSecondGrantKeepsOriginalTTL(t *testing.T) {
	svc, _, mem := newTestRewardService(t)
	ctx := context.Background()

	require.NoError(t, svc.ProcessReward(ctx, 1, model.CategoryFreeMissionName))
	require.NoError(t, svc.ProcessReward(ctx, 1, model.CategoryFreeMissionName))

	count, _, err := mem.Get(ctx, "1:FREE_MISSION")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ttl, ok := mem.TTL("1:FREE_MISSION")
	require.True(t, ok)
	assert.Equal(t, 2*time.Hour, ttl)
}

func TestProcessRewardCacheDownIsInfraErrorNotFreeGrant(t *testing.T) {
	loc := seoul(t)
	store := newFakeRewardStore()
	svc := NewRewardService(store, failingStore{}, loc)

	err := svc.ProcessReward(context.Background(), 1, model.CategoryDailyMissionName)
	assert.ErrorIs(t, err, util.ErrCacheUnavailable)
	assert.NotErrorIs(t, err, util.ErrDailyRewardLimitExceeded)
	assert.Empty(t, store.rewards)
}

func TestUseNutrition(t *testing.T) {
	svc, store, _ := newTestRewardService(t)

	store.rewards[1] = &model.Reward{BaseModel: model.BaseModel{ID: 11}, UserID: 1, Nutrition: 2, Experience: 5}

	id, err := svc.UseNutrition(1)
	require.NoError(t, err)
	assert.Equal(t, uint(11), id)
	assert.Equal(t, 1, store.rewards[1].Nutrition)
	assert.Equal(t, 35, store.rewards[1].Experience)
}

func TestUseNutritionRejectsEmptyBalance(t *testing.T) {
	svc, store, _ := newTestRewardService(t)

	store.rewards[1] = &model.Reward{BaseModel: model.BaseModel{ID: 11}, UserID: 1, Nutrition: 0}

	_, err := svc.UseNutrition(1)
	assert.ErrorIs(t, err, util.ErrInsufficientNutrition)
	assert.Equal(t, 0, store.rewards[1].Nutrition)
}

func TestUseNutritionMissingLedger(t *testing.T) {
	svc, _, _ := newTestRewardService(t)

	_, err := svc.UseNutrition(42)
	assert.ErrorIs(t, err, util.ErrRewardNotFound)
}

func TestGetRewardMissing(t *testing.T) {
	svc, _, _ := newTestRewardService(t)

	_, err := svc.GetReward(42)
	assert.ErrorIs(t, err, util.ErrRewardNotFound)
}
