package service

import (
	"devita_backend/internal/model"
	"devita_backend/internal/repository"
	"time"
)

// Store interfaces abstract the repositories so service tests can run
// against fakes. The gorm repositories are the production implementations;
// the assertions below keep them in sync.

type UserStore interface {
	CreateWithDefaults(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	Update(user *model.User) error
}

type RewardStore interface {
	FindByUserID(userID uint) (*model.Reward, error)
	Create(reward *model.Reward) error
	Save(reward *model.Reward) error
	Consume(userID uint, experienceGain int) (uint, error)
}

type TodoStore interface {
	Create(todo *model.Todo) error
	FindByID(id uint) (*model.Todo, error)
	Update(todo *model.Todo) error
	Delete(id uint) error
	FindByUserAndDateRange(userID uint, start, end time.Time) ([]model.Todo, error)
}

type CategoryStore interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByUserID(userID uint) ([]model.Category, error)
	FindByUserAndName(userID uint, name string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type PostStore interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
	FindPage(page, limit int) ([]model.Post, int64, error)
	FindByUserPage(userID uint, page, limit int) ([]model.Post, int64, error)
	IncrementViews(id uint) error
	IncrementLikesLocked(id uint) (int64, error)
	CompareAndSetLikes(id uint, oldLikes, newLikes int64) (bool, error)
	SetLikes(posts []*model.Post) error
}

type FollowStore interface {
	Create(follow *model.Follow) error
	Delete(followerID, followingID uint) (int64, error)
	Exists(followerID, followingID uint) (bool, error)
	FindFollowers(userID uint) ([]model.User, error)
	FindFollowings(userID uint) ([]model.User, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowings(userID uint) (int64, error)
}

var (
	_ UserStore     = (*repository.UserRepository)(nil)
	_ RewardStore   = (*repository.RewardRepository)(nil)
	_ TodoStore     = (*repository.TodoRepository)(nil)
	_ CategoryStore = (*repository.CategoryRepository)(nil)
	_ PostStore     = (*repository.PostRepository)(nil)
	_ FollowStore   = (*repository.FollowRepository)(nil)
)
