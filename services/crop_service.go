package services

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxCropImages = 5

type CropService struct {
	DB        *gorm.DB
	Repo      *repository.CropRepository
	UploadDir string
}

func NewCropService(db *gorm.DB, repo *repository.CropRepository, uploadDir string) *CropService {
	return &CropService{DB: db, Repo: repo, UploadDir: uploadDir}
}

// CropInput carries the raw form fields of a crop submission.
type CropInput struct {
	Name        string
	Category    string
	Description string
	Quantity    string
	Unit        string
	Price       string
	HarvestDate string // YYYY-MM-DD, optional
}

func (in CropInput) toCrop(farmerID uint) (*entity.Crop, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.NewInvalidInput("name is required")
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		return nil, apperr.NewInvalidInput("unit is required")
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(in.Quantity))
	if err != nil || !qty.IsPositive() {
		return nil, apperr.NewInvalidInput("quantity must be a number greater than 0")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || !price.IsPositive() {
		return nil, apperr.NewInvalidInput("price must be a number greater than 0")
	}
	if !entity.FitsScale(qty) || !entity.FitsScale(price) {
		return nil, apperr.NewInvalidInput("quantity and price allow at most 4 decimal places")
	}

	crop := &entity.Crop{
		FarmerID:    farmerID,
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Quantity:    qty,
		Unit:        unit,
		Price:       price,
		Images:      []string{},
		Status:      entity.CropPending,
	}
	if d := strings.TrimSpace(in.HarvestDate); d != "" {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return nil, apperr.NewInvalidInput("harvestDate must be YYYY-MM-DD")
		}
		crop.HarvestDate = &t
	}
	return crop, nil
}

// Submit validates the fields, stores the images and inserts the crop as pending.
func (s *CropService) Submit(farmerID uint, in CropInput, images []*multipart.FileHeader) (*entity.Crop, error) {
	crop, err := in.toCrop(farmerID)
	if err != nil {
		return nil, err
	}
	if len(images) > MaxCropImages {
		return nil, apperr.NewInvalidInput("at most 5 images are allowed")
	}

	saved := make([]string, 0, len(images))
	for _, fh := range images {
		name, err := utils.SaveImage(fh, s.UploadDir, "crop")
		if err != nil {
			utils.RemoveImages(s.UploadDir, saved)
			return nil, uploadErr(err, fh.Filename)
		}
		saved = append(saved, name)
	}
	crop.Images = saved

	if err := s.Repo.Create(crop); err != nil {
		utils.RemoveImages(s.UploadDir, saved)
		return nil, apperr.Internal(err)
	}
	return crop, nil
}

// Review applies an admin decision through the crop status table.
func (s *CropService) Review(cropID uint, decision entity.CropStatus) (*entity.Crop, error) {
	if decision != entity.CropApproved && decision != entity.CropRejected && decision != entity.CropListed {
		return nil, apperr.NewInvalidInput("status must be approved, rejected or listed")
	}

	var out *entity.Crop
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		crops := s.Repo.WithTx(tx)
		crop, err := crops.FindByIDForUpdate(cropID)
		if err != nil {
			return notFoundOr(err, "crop not found")
		}
		if !crop.Status.CanTransitionTo(decision) {
			return apperr.NewInvalidState("crop cannot move from " + string(crop.Status) + " to " + string(decision))
		}
		affected, err := crops.UpdateStatusGuard(crop.ID, crop.Status, decision)
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.NewInvalidState("crop status changed concurrently")
		}
		crop.Status = decision
		out = crop
		return nil
	})
	if err != nil {
		return nil, passthrough(err)
	}
	return out, nil
}

// Delete removes a farmer's own crop while it is still pending.
func (s *CropService) Delete(cropID, farmerID uint) error {
	return passthrough(s.DB.Transaction(func(tx *gorm.DB) error {
		crops := s.Repo.WithTx(tx)
		crop, err := crops.FindByID(cropID)
		if err != nil {
			return notFoundOr(err, "crop not found")
		}
		if crop.FarmerID != farmerID {
			return apperr.NewNotFound("crop not found")
		}
		if crop.Status != entity.CropPending {
			return apperr.NewInvalidState("only pending crops can be deleted")
		}
		affected, err := crops.DeletePending(crop.ID, farmerID)
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.NewInvalidState("only pending crops can be deleted")
		}
		return nil
	}))
}

func (s *CropService) ListForFarmer(farmerID uint) ([]entity.Crop, error) {
	crops, err := s.Repo.ListByFarmer(farmerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return crops, nil
}

func (s *CropService) ListByStatus(statuses []entity.CropStatus, page repository.Page) ([]entity.Crop, int64, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, 0, apperr.NewInvalidInput("invalid crop status")
		}
	}
	crops, total, err := s.Repo.ListByStatus(statuses, page)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return crops, total, nil
}

// Get hides crops that are not visible from everyone except the owner, admins and quality agents.
func (s *CropService) Get(cropID, viewerID uint, viewerRole entity.Role) (*entity.Crop, error) {
	crop, err := s.Repo.FindByID(cropID)
	if err != nil {
		return nil, notFoundOr(err, "crop not found")
	}
	if crop.Status.Visible() {
		return crop, nil
	}
	if crop.FarmerID == viewerID || viewerRole == entity.RoleAdmin || viewerRole == entity.RoleAgentQuality {
		return crop, nil
	}
	return nil, apperr.NewNotFound("crop not found")
}
