package repository

import (
	"github.com/AGTechathon/Agriminds/entity"

	"gorm.io/gorm"
)

type InspectionRepository struct {
	DB *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{DB: db}
}

func (r *InspectionRepository) Create(in *entity.QualityInspection) error {
	return r.DB.Create(in).Error
}

func (r *InspectionRepository) ListForCrop(cropID uint) ([]entity.QualityInspection, error) {
	var out []entity.QualityInspection
	err := r.DB.Where("crop_id = ?", cropID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
