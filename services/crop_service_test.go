package services

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/utils"
)

func (s *serviceSuite) TestSubmitValidation() {
	cases := []struct {
		name string
		in   CropInput
	}{
		{"missing name", CropInput{Quantity: "1", Unit: "kg", Price: "1"}},
		{"missing unit", CropInput{Name: "Wheat", Quantity: "1", Price: "1"}},
		{"zero quantity", CropInput{Name: "Wheat", Quantity: "0", Unit: "kg", Price: "1"}},
		{"bad quantity", CropInput{Name: "Wheat", Quantity: "lots", Unit: "kg", Price: "1"}},
		{"negative price", CropInput{Name: "Wheat", Quantity: "1", Unit: "kg", Price: "-2"}},
		{"quantity too precise", CropInput{Name: "Wheat", Quantity: "0.00001", Unit: "kg", Price: "1"}},
		{"price too precise", CropInput{Name: "Wheat", Quantity: "1", Unit: "kg", Price: "2.12345"}},
		{"bad harvest date", CropInput{Name: "Wheat", Quantity: "1", Unit: "kg", Price: "1", HarvestDate: "12/03/2025"}},
	}
	for _, tc := range cases {
		_, err := s.crops.Submit(s.farmer.ID, tc.in, nil)
		s.True(apperr.Is(err, apperr.InvalidInput), tc.name)
	}

	c, err := s.crops.Submit(s.farmer.ID, CropInput{Name: "Wheat", Quantity: "2.50000", Unit: "kg", Price: "19.9999"}, nil)
	s.Require().NoError(err, "trailing zeros are not extra precision")
	s.Equal("2.5", c.Quantity.String())

	six := make([]*multipart.FileHeader, 6)
	_, err = s.crops.Submit(s.farmer.ID, CropInput{Name: "Wheat", Quantity: "1", Unit: "kg", Price: "1"}, six)
	s.True(apperr.Is(err, apperr.InvalidInput), "too many images")
}

func (s *serviceSuite) TestSubmitStoresImagesAndStartsPending() {
	a := pngUpload(s.T(), "crop_images", "a.png", 40, 30)
	b := pngUpload(s.T(), "crop_images", "b.png", 2000, 1000)

	crop, err := s.crops.Submit(s.farmer.ID, CropInput{
		Name: "Tomato", Category: "vegetable", Quantity: "80", Unit: "crate", Price: "250.75", HarvestDate: "2025-03-12",
	}, []*multipart.FileHeader{a, b})
	s.Require().NoError(err)
	s.Equal(entity.CropPending, crop.Status)
	s.Require().Len(crop.Images, 2)
	s.Equal("2025-03-12", crop.HarvestDate.Format("2006-01-02"))
	for _, name := range crop.Images {
		_, err := os.Stat(filepath.Join(s.uploadDir, name))
		s.NoError(err, name)
	}

	stored, err := s.crops.Get(crop.ID, s.farmer.ID, entity.RoleFarmer)
	s.Require().NoError(err)
	s.Equal([]string(crop.Images), []string(stored.Images), "image order kept")
}

func (s *serviceSuite) TestSubmitRejectsNonImagesAndCleansUp() {
	good := pngUpload(s.T(), "crop_images", "ok.png", 10, 10)
	bad := fileUpload(s.T(), "crop_images", "notes.txt", []byte("not a picture"))

	_, err := s.crops.Submit(s.farmer.ID, CropInput{Name: "Okra", Quantity: "5", Unit: "kg", Price: "3"}, []*multipart.FileHeader{good, bad})
	s.True(apperr.Is(err, apperr.InvalidInput), err)

	entries, err := os.ReadDir(s.uploadDir)
	s.Require().NoError(err)
	s.Empty(entries, "saved images removed after a failed submit")

	var count int64
	s.db.Model(&entity.Crop{}).Count(&count)
	s.Zero(count)
}

func (s *serviceSuite) TestSubmitRejectsOversizedImages() {
	good := pngUpload(s.T(), "crop_images", "ok.png", 10, 10)
	big := fileUpload(s.T(), "crop_images", "big.jpg", make([]byte, utils.MaxImageBytes+1))

	_, err := s.crops.Submit(s.farmer.ID, CropInput{Name: "Okra", Quantity: "5", Unit: "kg", Price: "3"}, []*multipart.FileHeader{good, big})
	s.True(apperr.Is(err, apperr.InvalidInput), err)
	s.Contains(apperr.Message(err), "big.jpg")

	entries, err := os.ReadDir(s.uploadDir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *serviceSuite) TestReviewFollowsTransitions() {
	c := s.crop("Soybean", "10", "40", entity.CropPending)

	_, err := s.crops.Review(c.ID, entity.CropPending)
	s.True(apperr.Is(err, apperr.InvalidInput), "pending is not a decision")

	_, err = s.crops.Review(c.ID, entity.CropListed)
	s.True(apperr.Is(err, apperr.InvalidState), "must be approved before listing")

	_, err = s.crops.Review(777, entity.CropApproved)
	s.True(apperr.Is(err, apperr.NotFound))

	got, err := s.crops.Review(c.ID, entity.CropApproved)
	s.Require().NoError(err)
	s.Equal(entity.CropApproved, got.Status)

	_, err = s.crops.Review(c.ID, entity.CropApproved)
	s.True(apperr.Is(err, apperr.InvalidState), "already approved")

	_, err = s.crops.Review(c.ID, entity.CropRejected)
	s.True(apperr.Is(err, apperr.InvalidState))

	got, err = s.crops.Review(c.ID, entity.CropListed)
	s.Require().NoError(err)
	s.Equal(entity.CropListed, got.Status)
}

func (s *serviceSuite) TestDeleteOnlyOwnPendingCrops() {
	pending := s.crop("Peas", "10", "40", entity.CropPending)
	approved := s.crop("Beans", "10", "40", entity.CropApproved)
	other := s.user("lakshmi", entity.RoleFarmer)

	s.True(apperr.Is(s.crops.Delete(pending.ID, other.ID), apperr.NotFound), "not the owner")
	s.True(apperr.Is(s.crops.Delete(approved.ID, s.farmer.ID), apperr.InvalidState))
	s.True(apperr.Is(s.crops.Delete(999, s.farmer.ID), apperr.NotFound))

	s.Require().NoError(s.crops.Delete(pending.ID, s.farmer.ID))
	s.True(apperr.Is(s.crops.Delete(pending.ID, s.farmer.ID), apperr.NotFound), "already gone")

	mine, err := s.crops.ListForFarmer(s.farmer.ID)
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *serviceSuite) TestGetHidesUnreviewedCrops() {
	c := s.crop("Lentil", "10", "40", entity.CropPending)

	_, err := s.crops.Get(c.ID, s.buyer.ID, entity.RoleBuyer)
	s.True(apperr.Is(err, apperr.NotFound))

	for _, viewer := range []*entity.User{s.farmer, s.admin, s.quality} {
		_, err := s.crops.Get(c.ID, viewer.ID, viewer.Role)
		s.NoError(err, viewer.Username)
	}

	_, err = s.crops.Review(c.ID, entity.CropApproved)
	s.Require().NoError(err)
	_, err = s.crops.Get(c.ID, s.buyer.ID, entity.RoleBuyer)
	s.NoError(err)
}

func (s *serviceSuite) TestListByStatus() {
	s.crop("A", "1", "1", entity.CropPending)
	s.crop("B", "1", "1", entity.CropApproved)
	s.crop("C", "1", "1", entity.CropRejected)

	crops, total, err := s.crops.ListByStatus([]entity.CropStatus{entity.CropPending, entity.CropApproved}, repository.NewPage(0, 0))
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Len(crops, 2)

	_, total, err = s.crops.ListByStatus(nil, repository.NewPage(0, 0))
	s.Require().NoError(err)
	s.EqualValues(3, total)

	_, _, err = s.crops.ListByStatus([]entity.CropStatus{"sold"}, repository.NewPage(0, 0))
	s.True(apperr.Is(err, apperr.InvalidInput))
}
