package model

// swagger:model Follow
type Follow struct {
	BaseModel
	FollowerID  uint `gorm:"index:idx_follow_pair,unique;not null" json:"followerId"`
	FollowingID uint `gorm:"index:idx_follow_pair,unique;not null" json:"followingId"`
}

func (Follow) TableName() string {
	return "follows"
}
