package model

// swagger:model Category
type Category struct {
	BaseModel
	UserID uint   `gorm:"index:idx_user_category_name,unique;not null" json:"userId"`
	Name   string `gorm:"size:100;index:idx_user_category_name,unique;not null" json:"name"`
	Color  string `gorm:"size:20;not null" json:"color"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategories are seeded for every new user in this order.
func DefaultCategories(userID uint) []Category {
	return []Category{
		{UserID: userID, Name: CategoryDefaultName, Color: CategoryDefaultColor},
		{UserID: userID, Name: CategoryDailyMissionName, Color: CategoryDailyMissionColor},
		{UserID: userID, Name: CategoryFreeMissionName, Color: CategoryFreeMissionColor},
	}
}
