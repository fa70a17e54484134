package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

type pair struct{ follower, following uint }

type fakeFollowStore struct {
	pairs map[pair]bool
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{pairs: make(map[pair]bool)}
}

func (f *fakeFollowStore) Create(follow *model.Follow) error {
	f.pairs[pair{follow.FollowerID, follow.FollowingID}] = true
	return nil
}

func (f *fakeFollowStore) Delete(followerID, followingID uint) (int64, error) {
	p := pair{followerID, followingID}
	if !f.pairs[p] {
		return 0, nil
	}
	delete(f.pairs, p)
	return 1, nil
}

func (f *fakeFollowStore) Exists(followerID, followingID uint) (bool, error) {
	return f.pairs[pair{followerID, followingID}], nil
}

func (f *fakeFollowStore) FindFollowers(userID uint) ([]model.User, error) {
	var users []model.User
	for p := range f.pairs {
		if p.following == userID {
			users = append(users, model.User{BaseModel: model.BaseModel{ID: p.follower}})
		}
	}
	return users, nil
}

func (f *fakeFollowStore) FindFollowings(userID uint) ([]model.User, error) {
	var users []model.User
	for p := range f.pairs {
		if p.follower == userID {
			users = append(users, model.User{BaseModel: model.BaseModel{ID: p.following}})
		}
	}
	return users, nil
}

func (f *fakeFollowStore) CountFollowers(userID uint) (int64, error) {
	users, _ := f.FindFollowers(userID)
	return int64(len(users)), nil
}

func (f *fakeFollowStore) CountFollowings(userID uint) (int64, error) {
	users, _ := f.FindFollowings(userID)
	return int64(len(users)), nil
}

type fakeUserStore struct {
	users map[uint]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uint]*model.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) CreateWithDefaults(user *model.User) error {
	user.ID = uint(len(f.users) + 1)
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(user *model.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func newTestFollowService(users ...*model.User) (*FollowService, *fakeFollowStore) {
	follows := newFakeFollowStore()
	// nil redis client: the list cache is skipped entirely.
	return NewFollowService(follows, newFakeUserStore(users...), nil), follows
}

func TestFollowRejectsSelf(t *testing.T) {
	svc, _ := newTestFollowService(&model.User{BaseModel: model.BaseModel{ID: 1}})

	err := svc.Follow(1, 1)
	assert.ErrorIs(t, err, util.ErrCannotFollowSelf)
}

func TestFollowRejectsUnknownTarget(t *testing.T) {
	svc, _ := newTestFollowService(&model.User{BaseModel: model.BaseModel{ID: 1}})

	err := svc.Follow(1, 99)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestFollowRejectsDuplicate(t *testing.T) {
	svc, _ := newTestFollowService(
		&model.User{BaseModel: model.BaseModel{ID: 1}},
		&model.User{BaseModel: model.BaseModel{ID: 2}},
	)

	require.NoError(t, svc.Follow(1, 2))
	err := svc.Follow(1, 2)
	assert.ErrorIs(t, err, util.ErrAlreadyFollowing)
}

func TestUnfollowMissingRelation(t *testing.T) {
	svc, _ := newTestFollowService()

	err := svc.Unfollow(1, 2)
	assert.ErrorIs(t, err, util.ErrFollowNotFound)
}

func TestFollowListsAndCounts(t *testing.T) {
	svc, _ := newTestFollowService(
		&model.User{BaseModel: model.BaseModel{ID: 1}},
		&model.User{BaseModel: model.BaseModel{ID: 2}},
		&model.User{BaseModel: model.BaseModel{ID: 3}},
	)
	ctx := context.Background()

	require.NoError(t, svc.Follow(1, 2))
	require.NoError(t, svc.Follow(3, 2))

	followers, err := svc.Followers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	followings, err := svc.Followings(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, followings, 1)

	counts, err := svc.Counts(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Followers)
	assert.Equal(t, int64(0), counts.Followings)
}
