package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AmountScale is how many decimal places a crop quantity or price keeps.
const AmountScale = 4

// FitsScale reports whether d is stored without losing digits.
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

type Crop struct {
	gorm.Model
	FarmerID uint `gorm:"index;not null" json:"farmerId"`
	Farmer   User `json:"-"` // preload only for admin listings

	Name        string          `gorm:"not null" json:"name"`
	Category    string          `gorm:"index" json:"category"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"quantity"`
	Unit        string          `gorm:"not null" json:"unit"`
	Price       decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"price"`
	HarvestDate *time.Time      `json:"harvestDate,omitempty"`

	// file names under the upload dir, in upload order
	Images datatypes.JSONSlice[string] `json:"images"`

	Status CropStatus `gorm:"index;not null;default:pending" json:"status"`

	Orders      []Order             `json:"-"`
	Inspections []QualityInspection `json:"-"`
}
