package model

type AuthProvider string

const (
	ProviderKakao AuthProvider = "KAKAO"
)

// swagger:model User
type User struct {
	BaseModel
	Nickname            string       `gorm:"size:100;not null" json:"nickname"`
	Email               string       `gorm:"size:100;unique;not null" json:"email"`
	Provider            AuthProvider `gorm:"size:20;default:'KAKAO'" json:"provider"`
	ProfileImageURL     string       `gorm:"size:512" json:"profileImageUrl"`
	PreferredCategories string       `gorm:"size:255" json:"preferredCategories"`
}

func (User) TableName() string {
	return "users"
}
