package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;index" json:"role"`

	// Relations, preload only when needed
	Crops         []Crop         `gorm:"foreignKey:FarmerID" json:"-"`
	Orders        []Order        `gorm:"foreignKey:BuyerID" json:"-"`
	FarmerProfile *FarmerProfile `gorm:"foreignKey:UserID" json:"-"`
	BuyerProfile  *BuyerProfile  `gorm:"foreignKey:UserID" json:"-"`
	AgentProfile  *AgentProfile  `gorm:"foreignKey:UserID" json:"-"`
}
