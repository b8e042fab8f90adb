package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// nil once the crop row is gone
	CropID *uint `gorm:"index" json:"cropId"`
	Crop   *Crop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BuyerID uint `gorm:"index;not null" json:"buyerId"`
	Buyer   User `json:"-"`

	Quantity      decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"quantity"`
	// price x quantity, both at AmountScale, so 8 places is exact
	TotalPrice    decimal.Decimal `gorm:"type:decimal(28,8);not null" json:"totalPrice"`
	AdvanceAmount decimal.Decimal `gorm:"type:decimal(26,2);not null;default:0" json:"advanceAmount"`

	Status        OrderStatus   `gorm:"index;not null;default:pending" json:"status"`
	PaymentMethod PaymentMethod `gorm:"not null;default:cod" json:"paymentMethod"`
	PaymentStatus PaymentStatus `gorm:"not null;default:unpaid" json:"paymentStatus"`

	DeliveryAddress string `json:"deliveryAddress"`
}
