package controllers

import (
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/resp"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/services"
	"github.com/AGTechathon/Agriminds/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	CropID          uint            `json:"cropId" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	PaymentMethod   string          `json:"paymentMethod"`
	DeliveryAddress string          `json:"deliveryAddress" binding:"required"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/buyers/orders
func (oc *OrderController) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Place(utils.CurrentUserID(c), services.PlaceOrderInput{
		CropID:          req.CropID,
		Quantity:        req.Quantity,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/buyers/orders
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, err := oc.Svc.ListForBuyer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/farmer/orders
func (oc *OrderController) ListForFarmer(c *gin.Context) {
	orders, err := oc.Svc.ListForFarmer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /api/buyers/orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := oc.Svc.Cancel(id, utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.UpdateStatus(id, entity.OrderStatus(req.Status), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/admin/orders?status=pending&page=1
func (oc *OrderController) AdminList(c *gin.Context) {
	var statuses []entity.OrderStatus
	if s := c.Query("status"); s != "" {
		statuses = append(statuses, entity.OrderStatus(s))
	}
	page := repository.PageFromNumber(utils.QueryInt(c, "page", 1), utils.QueryInt(c, "limit", 0))
	orders, total, err := oc.Svc.ListAll(statuses, page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, Paged[repository.OrderView]{Items: orders, Total: total, Limit: page.Limit, Offset: page.Offset})
}

// GET /api/agents/delivery/orders
func (oc *OrderController) DeliveryQueue(c *gin.Context) {
	page := repository.PageFromNumber(utils.QueryInt(c, "page", 1), utils.QueryInt(c, "limit", 0))
	orders, total, err := oc.Svc.ListForDelivery(page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, Paged[repository.OrderView]{Items: orders, Total: total, Limit: page.Limit, Offset: page.Offset})
}
