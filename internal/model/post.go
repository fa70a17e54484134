package model

// Post likes are cache-first: the interactive like path bumps a redis
// counter and the Likes column is overwritten by the nightly
// reconciliation run.
//
// swagger:model Post
type Post struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	User        User   `gorm:"foreignKey:UserID" json:"user"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Likes       int64  `gorm:"default:0" json:"likes"`
	Views       int64  `gorm:"default:0" json:"views"`
}

func (Post) TableName() string {
	return "posts"
}
