package services

import (
	"mime/multipart"
	"strings"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/utils"
)

type ProfileService struct {
	Repo      *repository.ProfileRepository
	UploadDir string
}

func NewProfileService(repo *repository.ProfileRepository, uploadDir string) *ProfileService {
	return &ProfileService{Repo: repo, UploadDir: uploadDir}
}

// Update inputs use pointers so absent fields keep their stored value.
type FarmerProfileInput struct {
	Phone          *string
	Location       *string
	FarmSize       *string
	CropPreference *string
	Bio            *string
	Experience     *string
}

type BuyerProfileInput struct {
	ContactNumber      *string
	Location           *string
	PreferredCrops     *string
	PurchaseFrequency  *string
	DeliveryPreference *string
	Bio                *string
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func (s *ProfileService) GetFarmer(userID uint) (*entity.FarmerProfile, error) {
	p, err := s.Repo.FirstOrCreateFarmer(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *ProfileService) GetBuyer(userID uint) (*entity.BuyerProfile, error) {
	p, err := s.Repo.FirstOrCreateBuyer(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

// savePic stores a new profile picture, returning "" when none was sent.
func (s *ProfileService) savePic(pic *multipart.FileHeader, prefix string) (string, error) {
	if pic == nil {
		return "", nil
	}
	name, err := utils.SaveImage(pic, s.UploadDir, prefix)
	if err != nil {
		return "", uploadErr(err, "profile_pic")
	}
	return name, nil
}

func (s *ProfileService) UpdateFarmer(userID uint, in FarmerProfileInput, pic *multipart.FileHeader) (*entity.FarmerProfile, error) {
	p, err := s.GetFarmer(userID)
	if err != nil {
		return nil, err
	}
	set(&p.Phone, in.Phone)
	set(&p.Location, in.Location)
	set(&p.FarmSize, in.FarmSize)
	set(&p.CropPreference, in.CropPreference)
	set(&p.Bio, in.Bio)
	set(&p.Experience, in.Experience)

	name, err := s.savePic(pic, "farmer")
	if err != nil {
		return nil, err
	}
	old := p.ProfilePic
	if name != "" {
		p.ProfilePic = name
	}
	if err := s.Repo.SaveFarmer(p); err != nil {
		utils.RemoveImages(s.UploadDir, nonEmpty(name))
		return nil, apperr.Internal(err)
	}
	if name != "" {
		utils.RemoveImages(s.UploadDir, nonEmpty(old))
	}
	return p, nil
}

func (s *ProfileService) UpdateBuyer(userID uint, in BuyerProfileInput, pic *multipart.FileHeader) (*entity.BuyerProfile, error) {
	p, err := s.GetBuyer(userID)
	if err != nil {
		return nil, err
	}
	set(&p.ContactNumber, in.ContactNumber)
	set(&p.Location, in.Location)
	set(&p.PreferredCrops, in.PreferredCrops)
	set(&p.PurchaseFrequency, in.PurchaseFrequency)
	set(&p.DeliveryPreference, in.DeliveryPreference)
	set(&p.Bio, in.Bio)

	name, err := s.savePic(pic, "buyer")
	if err != nil {
		return nil, err
	}
	old := p.ProfilePic
	if name != "" {
		p.ProfilePic = name
	}
	if err := s.Repo.SaveBuyer(p); err != nil {
		utils.RemoveImages(s.UploadDir, nonEmpty(name))
		return nil, apperr.Internal(err)
	}
	if name != "" {
		utils.RemoveImages(s.UploadDir, nonEmpty(old))
	}
	return p, nil
}

func nonEmpty(names ...string) []string {
	out := names[:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
