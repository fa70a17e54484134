package model

import "errors"

// ErrNegativeRewardAmount rejects negative grants before they reach the
// ledger. Kept in the model so Apply stays self-contained.
var ErrNegativeRewardAmount = errors.New("reward amount must not be negative")

// Reward is a user's durable reward ledger: total experience and the
// current nutrition balance. One row per user.
//
// swagger:model Reward
type Reward struct {
	BaseModel
	UserID     uint `gorm:"uniqueIndex;not null" json:"userId"`
	Experience int  `gorm:"default:0" json:"experience"`
	Nutrition  int  `gorm:"default:0" json:"nutrition"`
}

func (Reward) TableName() string {
	return "rewards"
}

// Apply adds amount to the field selected by kind.
func (r *Reward) Apply(kind RewardKind, amount int) error {
	if amount < 0 {
		return ErrNegativeRewardAmount
	}
	switch kind {
	case RewardExperience:
		r.Experience += amount
	case RewardNutrition:
		r.Nutrition += amount
	}
	return nil
}
