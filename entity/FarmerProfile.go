package entity

import "gorm.io/gorm"

type FarmerProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Phone          string `json:"phone"`
	Location       string `json:"location"`
	ProfilePic     string `json:"profilePic"`
	FarmSize       string `json:"farmSize"`
	CropPreference string `json:"cropPreference"`
	Bio            string `json:"bio"`
	Experience     string `json:"experience"`
}
