package services

import (
	"strings"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
)

type InspectionService struct {
	Repo     *repository.InspectionRepository
	CropRepo *repository.CropRepository
}

func NewInspectionService(repo *repository.InspectionRepository, cropRepo *repository.CropRepository) *InspectionService {
	return &InspectionService{Repo: repo, CropRepo: cropRepo}
}

// Record logs a quality agent's grade for a crop that has not been rejected.
func (s *InspectionService) Record(agentID, cropID uint, grade entity.InspectionGrade, notes string) (*entity.QualityInspection, error) {
	if !grade.Valid() {
		return nil, apperr.NewInvalidInput("grade must be A, B, C or rejected")
	}
	crop, err := s.CropRepo.FindByID(cropID)
	if err != nil {
		return nil, notFoundOr(err, "crop not found")
	}
	if crop.Status == entity.CropRejected {
		return nil, apperr.NewInvalidState("crop has been rejected")
	}

	in := &entity.QualityInspection{
		CropID:  crop.ID,
		AgentID: agentID,
		Grade:   grade,
		Notes:   strings.TrimSpace(notes),
	}
	if err := s.Repo.Create(in); err != nil {
		return nil, apperr.Internal(err)
	}
	return in, nil
}

func (s *InspectionService) List(cropID uint) ([]entity.QualityInspection, error) {
	if _, err := s.CropRepo.FindByID(cropID); err != nil {
		return nil, notFoundOr(err, "crop not found")
	}
	out, err := s.Repo.ListForCrop(cropID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if out == nil {
		out = []entity.QualityInspection{}
	}
	return out, nil
}
