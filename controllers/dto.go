package controllers

import (
	"time"

	"github.com/AGTechathon/Agriminds/entity"

	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID           uint                  `json:"id"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	Role         entity.Role           `json:"role"`
	CreatedAt    time.Time             `json:"createdAt"`
	AgentProfile *AgentProfileResponse `json:"agentProfile,omitempty"`
}

type AgentProfileResponse struct {
	Kind  entity.AgentKind `json:"kind"`
	Name  string           `json:"name"`
	Phone string           `json:"phone"`
}

func toUser(u *entity.User) UserResponse {
	out := UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
	if p := u.AgentProfile; p != nil {
		out.AgentProfile = &AgentProfileResponse{Kind: p.Kind, Name: p.Name, Phone: p.Phone}
	}
	return out
}

type CropResponse struct {
	ID          uint              `json:"id"`
	FarmerID    uint              `json:"farmerId"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Quantity    decimal.Decimal   `json:"quantity"`
	Unit        string            `json:"unit"`
	Price       decimal.Decimal   `json:"price"`
	HarvestDate string            `json:"harvestDate,omitempty"`
	Images      []string          `json:"images"`
	Status      entity.CropStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func toCrop(c *entity.Crop) CropResponse {
	out := CropResponse{
		ID:          c.ID,
		FarmerID:    c.FarmerID,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Quantity:    c.Quantity,
		Unit:        c.Unit,
		Price:       c.Price,
		Images:      []string(c.Images),
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if c.HarvestDate != nil {
		out.HarvestDate = c.HarvestDate.Format(time.DateOnly)
	}
	return out
}

func toCrops(in []entity.Crop) []CropResponse {
	out := make([]CropResponse, 0, len(in))
	for i := range in {
		out = append(out, toCrop(&in[i]))
	}
	return out
}

type FarmerProfileResponse struct {
	UserID         uint   `json:"userId"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	ProfilePic     string `json:"profilePic"`
	FarmSize       string `json:"farmSize"`
	CropPreference string `json:"cropPreference"`
	Bio            string `json:"bio"`
	Experience     string `json:"experience"`
}

func toFarmerProfile(p *entity.FarmerProfile) FarmerProfileResponse {
	return FarmerProfileResponse{
		UserID: p.UserID, Phone: p.Phone, Location: p.Location, ProfilePic: p.ProfilePic,
		FarmSize: p.FarmSize, CropPreference: p.CropPreference, Bio: p.Bio, Experience: p.Experience,
	}
}

type BuyerProfileResponse struct {
	UserID             uint   `json:"userId"`
	ContactNumber      string `json:"contactNumber"`
	Location           string `json:"location"`
	ProfilePic         string `json:"profilePic"`
	PreferredCrops     string `json:"preferredCrops"`
	PurchaseFrequency  string `json:"purchaseFrequency"`
	DeliveryPreference string `json:"deliveryPreference"`
	Bio                string `json:"bio"`
}

func toBuyerProfile(p *entity.BuyerProfile) BuyerProfileResponse {
	return BuyerProfileResponse{
		UserID: p.UserID, ContactNumber: p.ContactNumber, Location: p.Location, ProfilePic: p.ProfilePic,
		PreferredCrops: p.PreferredCrops, PurchaseFrequency: p.PurchaseFrequency,
		DeliveryPreference: p.DeliveryPreference, Bio: p.Bio,
	}
}

type InspectionResponse struct {
	ID        uint                   `json:"id"`
	CropID    uint                   `json:"cropId"`
	AgentID   uint                   `json:"agentId"`
	Grade     entity.InspectionGrade `json:"grade"`
	Notes     string                 `json:"notes"`
	CreatedAt time.Time              `json:"createdAt"`
}

func toInspection(in *entity.QualityInspection) InspectionResponse {
	return InspectionResponse{ID: in.ID, CropID: in.CropID, AgentID: in.AgentID, Grade: in.Grade, Notes: in.Notes, CreatedAt: in.CreatedAt}
}

// Paged wraps admin listings.
type Paged[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
