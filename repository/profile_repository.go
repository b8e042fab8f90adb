package repository

import (
	"github.com/AGTechathon/Agriminds/entity"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FirstOrCreateFarmer returns the farmer's profile, inserting an empty one on first read.
func (r *ProfileRepository) FirstOrCreateFarmer(userID uint) (*entity.FarmerProfile, error) {
	var p entity.FarmerProfile
	err := r.DB.Where(entity.FarmerProfile{UserID: userID}).FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FirstOrCreateBuyer(userID uint) (*entity.BuyerProfile, error) {
	var p entity.BuyerProfile
	err := r.DB.Where(entity.BuyerProfile{UserID: userID}).FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) SaveFarmer(p *entity.FarmerProfile) error {
	return r.DB.Save(p).Error
}

func (r *ProfileRepository) SaveBuyer(p *entity.BuyerProfile) error {
	return r.DB.Save(p).Error
}

func (r *ProfileRepository) FindAgent(userID uint) (*entity.AgentProfile, error) {
	var p entity.AgentProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
