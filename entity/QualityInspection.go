package entity

import "gorm.io/gorm"

type InspectionGrade string

const (
	GradeA        InspectionGrade = "A"
	GradeB        InspectionGrade = "B"
	GradeC        InspectionGrade = "C"
	GradeRejected InspectionGrade = "rejected"
)

func (g InspectionGrade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeRejected:
		return true
	}
	return false
}

type QualityInspection struct {
	gorm.Model
	CropID  uint            `gorm:"index;not null" json:"cropId"`
	Crop    Crop            `json:"-"`
	AgentID uint            `gorm:"index;not null" json:"agentId"`
	Agent   User            `json:"-"`
	Grade   InspectionGrade `gorm:"not null" json:"grade"`
	Notes   string          `json:"notes"`
}
