package services

import (
	"os"
	"path/filepath"

	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/utils"
)

func strp(s string) *string { return &s }

func (s *serviceSuite) TestFarmerProfileUpsertOnRead() {
	p, err := s.profiles.GetFarmer(s.farmer.ID)
	s.Require().NoError(err)
	s.Equal(s.farmer.ID, p.UserID)
	s.Empty(p.Location)

	again, err := s.profiles.GetFarmer(s.farmer.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, again.ID)
}

func (s *serviceSuite) TestFarmerProfileUpdateKeepsAbsentFields() {
	_, err := s.profiles.UpdateFarmer(s.farmer.ID, FarmerProfileInput{Location: strp("Nashik"), Bio: strp("Grapes and onions")}, nil)
	s.Require().NoError(err)

	pic := pngUpload(s.T(), "profile_pic", "me.png", 64, 64)
	p, err := s.profiles.UpdateFarmer(s.farmer.ID, FarmerProfileInput{FarmSize: strp(" 12 acres ")}, pic)
	s.Require().NoError(err)
	s.Equal("Nashik", p.Location)
	s.Equal("Grapes and onions", p.Bio)
	s.Equal("12 acres", p.FarmSize)
	s.NotEmpty(p.ProfilePic)
	_, err = os.Stat(filepath.Join(s.uploadDir, p.ProfilePic))
	s.NoError(err)

	first := p.ProfilePic
	p, err = s.profiles.UpdateFarmer(s.farmer.ID, FarmerProfileInput{}, nil)
	s.Require().NoError(err)
	s.Equal(first, p.ProfilePic, "no new picture keeps the old one")

	p, err = s.profiles.UpdateFarmer(s.farmer.ID, FarmerProfileInput{}, pngUpload(s.T(), "profile_pic", "new.png", 8, 8))
	s.Require().NoError(err)
	s.NotEqual(first, p.ProfilePic)
	_, err = os.Stat(filepath.Join(s.uploadDir, first))
	s.True(os.IsNotExist(err), "replaced picture removed")
}

func (s *serviceSuite) TestBuyerProfile() {
	p, err := s.profiles.UpdateBuyer(s.buyer.ID, BuyerProfileInput{
		ContactNumber: strp("99887 66554"), PreferredCrops: strp("rice, wheat"), DeliveryPreference: strp("doorstep"),
	}, nil)
	s.Require().NoError(err)
	s.Equal("rice, wheat", p.PreferredCrops)

	got, err := s.profiles.GetBuyer(s.buyer.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)
	s.Equal("doorstep", got.DeliveryPreference)

	_, err = s.profiles.UpdateBuyer(s.buyer.ID, BuyerProfileInput{}, fileUpload(s.T(), "profile_pic", "x.txt", []byte("hello")))
	s.True(apperr.Is(err, apperr.InvalidInput))
}

func (s *serviceSuite) TestProfilePicTooLargeIsInvalidInput() {
	big := fileUpload(s.T(), "profile_pic", "me.jpg", make([]byte, utils.MaxImageBytes+1))
	_, err := s.profiles.UpdateBuyer(s.buyer.ID, BuyerProfileInput{}, big)
	s.True(apperr.Is(err, apperr.InvalidInput), err)
}
