package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/resp"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/services"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/gin-gonic/gin"
)

// form field names shared with the web client
const (
	cropImagesField = "crop_images"
	maxFormMemory   = 32 << 20
)

type SubmitCropForm struct {
	Name        string `form:"name" binding:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Quantity    string `form:"quantity" binding:"required"`
	Unit        string `form:"unit" binding:"required"`
	Price       string `form:"price" binding:"required"`
	HarvestDate string `form:"harvestDate"`
}

type CropStatusRequest struct {
	Status string `json:"status" binding:"required,cropstatus"`
}

type CropController struct {
	Svc    *services.CropService
	Market *services.MarketplaceService
}

func NewCropController(svc *services.CropService, market *services.MarketplaceService) *CropController {
	return &CropController{Svc: svc, Market: market}
}

// GET /api/crops, GET /api/buyers/marketplace
func (cc *CropController) Marketplace(c *gin.Context) {
	page, err := cc.Market.Search(services.MarketplaceQuery{
		Category:   c.Query("category"),
		MinPrice:   c.Query("minPrice"),
		MaxPrice:   c.Query("maxPrice"),
		SearchTerm: c.Query("searchTerm"),
		Limit:      utils.QueryInt(c, "limit", 0),
		Offset:     utils.QueryInt(c, "offset", 0),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, Paged[CropResponse]{Items: toCrops(page.Items), Total: page.Total, Limit: page.Limit, Offset: page.Offset})
}

// GET /api/crops/:id
func (cc *CropController) Detail(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid crop id")
		return
	}
	crop, err := cc.Svc.Get(id, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toCrop(crop))
}

// GET /api/farmer/crops
func (cc *CropController) ListMine(c *gin.Context) {
	crops, err := cc.Svc.ListForFarmer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toCrops(crops))
}

// POST /api/farmer/crops (multipart)
func (cc *CropController) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormMemory)
	var form SubmitCropForm
	if err := c.ShouldBind(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var images []*multipart.FileHeader
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		images = mf.File[cropImagesField]
	}

	crop, err := cc.Svc.Submit(utils.CurrentUserID(c), services.CropInput{
		Name:        form.Name,
		Category:    form.Category,
		Description: form.Description,
		Quantity:    form.Quantity,
		Unit:        form.Unit,
		Price:       form.Price,
		HarvestDate: form.HarvestDate,
	}, images)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toCrop(crop))
}

// DELETE /api/farmer/crops/:id
func (cc *CropController) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid crop id")
		return
	}
	if err := cc.Svc.Delete(id, utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "deleted": true})
}

// GET /api/admin/crops?status=pending&page=1&limit=20
func (cc *CropController) AdminList(c *gin.Context) {
	var statuses []entity.CropStatus
	if s := c.Query("status"); s != "" {
		statuses = append(statuses, entity.CropStatus(s))
	}
	cc.listByStatus(c, statuses)
}

// GET /api/agents/quality/crops → crops awaiting or passing review
func (cc *CropController) QualityQueue(c *gin.Context) {
	cc.listByStatus(c, []entity.CropStatus{entity.CropPending, entity.CropApproved})
}

func (cc *CropController) listByStatus(c *gin.Context, statuses []entity.CropStatus) {
	page := repository.PageFromNumber(utils.QueryInt(c, "page", 1), utils.QueryInt(c, "limit", 0))
	crops, total, err := cc.Svc.ListByStatus(statuses, page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, Paged[CropResponse]{Items: toCrops(crops), Total: total, Limit: page.Limit, Offset: page.Offset})
}

// PUT /api/admin/crops/:id/status
func (cc *CropController) SetStatus(c *gin.Context) {
	var req CropStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cc.review(c, entity.CropStatus(req.Status))
}

// PUT /api/admin/crops/:id/approve
func (cc *CropController) Approve(c *gin.Context) { cc.review(c, entity.CropApproved) }

// PUT /api/admin/crops/:id/reject
func (cc *CropController) Reject(c *gin.Context) { cc.review(c, entity.CropRejected) }

func (cc *CropController) review(c *gin.Context, decision entity.CropStatus) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid crop id")
		return
	}
	crop, err := cc.Svc.Review(id, decision)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toCrop(crop))
}
