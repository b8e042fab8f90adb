package entity

import "gorm.io/gorm"

type BuyerProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	ContactNumber      string `json:"contactNumber"`
	Location           string `json:"location"`
	ProfilePic         string `json:"profilePic"`
	PreferredCrops     string `json:"preferredCrops"`
	PurchaseFrequency  string `json:"purchaseFrequency"`
	DeliveryPreference string `json:"deliveryPreference"`
	Bio                string `json:"bio"`
}
