package model

import "time"

// swagger:model Todo
type Todo struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Status     bool      `gorm:"default:false" json:"status"`
	Date       time.Time `gorm:"type:date;index" json:"date"`
}

func (Todo) TableName() string {
	return "todos"
}
