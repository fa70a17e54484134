package repository

import (
	"devita_backend/internal/model"

	"gorm.io/gorm"
)

type FollowRepository struct {
	DB *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{DB: db}
}

func (r *FollowRepository) Create(follow *model.Follow) error {
	return r.DB.Create(follow).Error
}

func (r *FollowRepository) Delete(followerID, followingID uint) (int64, error) {
	res := r.DB.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *FollowRepository) Exists(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// FindFollowers returns users following userID.
func (r *FollowRepository) FindFollowers(userID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.
		Joins("JOIN follows ON follows.follower_id = users.id AND follows.deleted_at IS NULL").
		Where("follows.following_id = ?", userID).
		Find(&users).Error
	return users, err
}

// FindFollowings returns users that userID follows.
func (r *FollowRepository) FindFollowings(userID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.
		Joins("JOIN follows ON follows.following_id = users.id AND follows.deleted_at IS NULL").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *FollowRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowings(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
