package controllers

import (
	"mime/multipart"

	"github.com/AGTechathon/Agriminds/pkg/resp"
	"github.com/AGTechathon/Agriminds/services"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/gin-gonic/gin"
)

const profilePicField = "profile_pic"

// Absent fields keep their stored value, so every field is a pointer.
type FarmerProfileForm struct {
	Phone          *string `form:"phone" json:"phone"`
	Location       *string `form:"location" json:"location"`
	FarmSize       *string `form:"farmSize" json:"farmSize"`
	CropPreference *string `form:"cropPreference" json:"cropPreference"`
	Bio            *string `form:"bio" json:"bio"`
	Experience     *string `form:"experience" json:"experience"`
}

type BuyerProfileForm struct {
	ContactNumber      *string `form:"contactNumber" json:"contactNumber"`
	Location           *string `form:"location" json:"location"`
	PreferredCrops     *string `form:"preferredCrops" json:"preferredCrops"`
	PurchaseFrequency  *string `form:"purchaseFrequency" json:"purchaseFrequency"`
	DeliveryPreference *string `form:"deliveryPreference" json:"deliveryPreference"`
	Bio                *string `form:"bio" json:"bio"`
}

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// profilePic returns the optional uploaded picture.
func profilePic(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile(profilePicField)
	if err != nil {
		return nil
	}
	return fh
}

// GET /api/farmer/profile
func (pc *ProfileController) GetFarmer(c *gin.Context) {
	p, err := pc.Svc.GetFarmer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toFarmerProfile(p))
}

// PUT /api/farmer/profile (multipart or json)
func (pc *ProfileController) UpdateFarmer(c *gin.Context) {
	var form FarmerProfileForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Svc.UpdateFarmer(utils.CurrentUserID(c), services.FarmerProfileInput{
		Phone:          form.Phone,
		Location:       form.Location,
		FarmSize:       form.FarmSize,
		CropPreference: form.CropPreference,
		Bio:            form.Bio,
		Experience:     form.Experience,
	}, profilePic(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toFarmerProfile(p))
}

// GET /api/buyers/profile
func (pc *ProfileController) GetBuyer(c *gin.Context) {
	p, err := pc.Svc.GetBuyer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toBuyerProfile(p))
}

// PUT /api/buyers/profile (multipart or json)
func (pc *ProfileController) UpdateBuyer(c *gin.Context) {
	var form BuyerProfileForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Svc.UpdateBuyer(utils.CurrentUserID(c), services.BuyerProfileInput{
		ContactNumber:      form.ContactNumber,
		Location:           form.Location,
		PreferredCrops:     form.PreferredCrops,
		PurchaseFrequency:  form.PurchaseFrequency,
		DeliveryPreference: form.DeliveryPreference,
		Bio:                form.Bio,
	}, profilePic(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toBuyerProfile(p))
}
