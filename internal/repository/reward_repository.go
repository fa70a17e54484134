package repository

import (
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

func (r *RewardRepository) FindByUserID(userID uint) (*model.Reward, error) {
	var reward model.Reward
	err := r.DB.Where("user_id = ?", userID).First(&reward).Error
	return &reward, err
}

func (r *RewardRepository) Create(reward *model.Reward) error {
	return r.DB.Create(reward).Error
}

func (r *RewardRepository) Save(reward *model.Reward) error {
	return r.DB.Save(reward).Error
}

// Consume spends one nutrition for experience. The row is locked for the
// duration of the transaction so concurrent spends cannot drive the
// balance negative.
func (r *RewardRepository) Consume(userID uint, experienceGain int) (uint, error) {
	var rewardID uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var reward model.Reward
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&reward).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRewardNotFound
		}
		if err != nil {
			return err
		}

		if reward.Nutrition <= 0 {
			return util.ErrInsufficientNutrition
		}

		reward.Nutrition--
		reward.Experience += experienceGain
		rewardID = reward.ID
		return tx.Save(&reward).Error
	})
	return rewardID, err
}
