package entity

import "gorm.io/gorm"

type AgentKind string

const (
	AgentQuality  AgentKind = "quality"
	AgentDelivery AgentKind = "delivery"
)

// AgentProfile is created together with the user when an agent registers.
type AgentProfile struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User   User      `json:"-"`
	Kind   AgentKind `gorm:"not null" json:"kind"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
}
