package service

import (
	"devita_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type UserService struct {
	Users   UserStore
	Rewards RewardStore
}

func NewUserService(users UserStore, rewards RewardStore) *UserService {
	return &UserService{Users: users, Rewards: rewards}
}

// UserInfo is the profile payload: identity plus current reward balances.
type UserInfo struct {
	UserID          uint   `json:"userId"`
	Nickname        string `json:"nickname"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
	Experience      int    `json:"experience"`
	Nutrition       int    `json:"nutrition"`
}

type PreferredCategoriesRequest struct {
	PreferredCategories string `json:"preferredCategories" binding:"required"`
}

func (s *UserService) GetUserInfo(userID uint) (*UserInfo, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	info := &UserInfo{
		UserID:          user.ID,
		Nickname:        user.Nickname,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}

	reward, err := s.Rewards.FindByUserID(userID)
	if err == nil {
		info.Experience = reward.Experience
		info.Nutrition = reward.Nutrition
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return info, nil
}

func (s *UserService) GetPreferredCategories(userID uint) (string, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return user.PreferredCategories, nil
}

func (s *UserService) UpdatePreferredCategories(userID uint, req PreferredCategoriesRequest) error {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	user.PreferredCategories = req.PreferredCategories
	return s.Users.Update(user)
}
