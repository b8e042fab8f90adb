package services

import (
	"errors"
	"strings"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CropRepo *repository.CropRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cropRepo *repository.CropRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CropRepo: cropRepo}
}

type PlaceOrderInput struct {
	CropID          uint
	Quantity        decimal.Decimal
	PaymentMethod   string
	DeliveryAddress string
}

// Place reserves the quantity on the crop and inserts the order in one transaction.
func (s *OrderService) Place(buyerID uint, in PlaceOrderInput) (*repository.OrderView, error) {
	if !in.Quantity.IsPositive() {
		return nil, apperr.NewInvalidInput("quantity must be greater than 0")
	}
	if !entity.FitsScale(in.Quantity) {
		return nil, apperr.NewInvalidInput("quantity allows at most 4 decimal places")
	}
	method := entity.PaymentMethod(strings.ToLower(strings.TrimSpace(in.PaymentMethod)))
	if method == "" {
		method = entity.PaymentCashOnDelivery
	}
	if !method.Valid() {
		return nil, apperr.NewInvalidInput("paymentMethod must be advance, full or cod")
	}

	var view *repository.OrderView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		crops := s.CropRepo.WithTx(tx)
		orders := s.Repo.WithTx(tx)

		crop, err := crops.FindByIDForUpdate(in.CropID)
		if err != nil {
			return notFoundOr(err, "crop not found")
		}
		if !crop.Status.Visible() {
			return apperr.NewNotFound("crop not found")
		}

		affected, err := crops.DecrementQuantity(crop.ID, crop.Quantity, in.Quantity)
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.NewInvalidState("insufficient quantity")
		}

		quote := QuoteOrder(crop.Price, in.Quantity, method)
		cropID := crop.ID
		order := &entity.Order{
			CropID:          &cropID,
			BuyerID:         buyerID,
			Quantity:        in.Quantity,
			TotalPrice:      quote.Total,
			AdvanceAmount:   quote.Advance,
			Status:          entity.OrderPending,
			PaymentMethod:   method,
			PaymentStatus:   quote.PaymentStatus,
			DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		}
		if err := orders.Create(order); err != nil {
			return apperr.Internal(err)
		}

		view = newOrderView(order, crop)
		return nil
	})
	if err != nil {
		return nil, passthrough(err)
	}
	return view, nil
}

// newOrderView echoes the values just written rather than re-reading them.
func newOrderView(o *entity.Order, c *entity.Crop) *repository.OrderView {
	farmerID := c.FarmerID
	return &repository.OrderView{
		ID:              o.ID,
		CropID:          o.CropID,
		BuyerID:         o.BuyerID,
		CropName:        c.Name,
		CropDescription: c.Description,
		CropUnit:        c.Unit,
		FarmerID:        &farmerID,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		AdvanceAmount:   o.AdvanceAmount,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// Cancel lets the buyer withdraw a pending order. The reserved quantity goes back to the crop.
func (s *OrderService) Cancel(orderID, buyerID uint) (*repository.OrderView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := s.Repo.WithTx(tx)
		o, err := orders.FindByID(orderID)
		if err != nil {
			return notFoundOr(err, "order not found")
		}
		if o.BuyerID != buyerID {
			return apperr.NewForbidden("not your order")
		}
		if o.Status != entity.OrderPending {
			return apperr.NewInvalidState("only pending orders can be cancelled")
		}
		return s.transition(tx, o, entity.OrderCancelled)
	})
	if err != nil {
		return nil, passthrough(err)
	}
	return s.view(orderID)
}

// UpdateStatus moves an order along pending, confirmed, in-transit, delivered.
// Repeating the current status only touches updated_at.
func (s *OrderService) UpdateStatus(orderID uint, next entity.OrderStatus, actor entity.Role) (*repository.OrderView, error) {
	if actor != entity.RoleAdmin && actor != entity.RoleAgentDelivery {
		return nil, apperr.NewForbidden("only admins and delivery agents can update orders")
	}
	if !next.Valid() {
		return nil, apperr.NewInvalidInput("invalid order status")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := s.Repo.WithTx(tx)
		o, err := orders.FindByID(orderID)
		if err != nil {
			return notFoundOr(err, "order not found")
		}
		if o.Status == next {
			if err := orders.Touch(o.ID); err != nil {
				return apperr.Internal(err)
			}
			return nil
		}
		if o.Status.Terminal() {
			return apperr.NewInvalidState("order is already " + string(o.Status))
		}
		if !o.Status.CanTransitionTo(next) {
			return apperr.NewInvalidState("order cannot move from " + string(o.Status) + " to " + string(next))
		}
		return s.transition(tx, o, next)
	})
	if err != nil {
		return nil, passthrough(err)
	}
	return s.view(orderID)
}

func (s *OrderService) transition(tx *gorm.DB, o *entity.Order, next entity.OrderStatus) error {
	affected, err := s.Repo.WithTx(tx).UpdateStatusGuard(o.ID, o.Status, next)
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.NewInvalidState("order status changed concurrently")
	}
	if next == entity.OrderCancelled && o.CropID != nil {
		return s.restoreQuantity(tx, *o.CropID, o.Quantity)
	}
	return nil
}

// restoreQuantity is a no-op when the crop has since been deleted.
func (s *OrderService) restoreQuantity(tx *gorm.DB, cropID uint, qty decimal.Decimal) error {
	crops := s.CropRepo.WithTx(tx)
	crop, err := crops.FindByIDForUpdate(cropID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Internal(err)
	}
	affected, err := crops.RestoreQuantity(crop.ID, crop.Quantity, qty)
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.NewInvalidState("crop quantity changed concurrently")
	}
	return nil
}

func (s *OrderService) view(orderID uint) (*repository.OrderView, error) {
	v, err := s.Repo.FindView(orderID)
	if err != nil {
		return nil, notFoundOr(err, "order not found")
	}
	return v, nil
}

func (s *OrderService) ListForBuyer(buyerID uint) ([]repository.OrderView, error) {
	out, err := s.Repo.ListForBuyer(buyerID)
	return emptyIfNil(out), passthrough(err)
}

func (s *OrderService) ListForFarmer(farmerID uint) ([]repository.OrderView, error) {
	out, err := s.Repo.ListForFarmer(farmerID)
	return emptyIfNil(out), passthrough(err)
}

func (s *OrderService) ListAll(statuses []entity.OrderStatus, page repository.Page) ([]repository.OrderView, int64, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, 0, apperr.NewInvalidInput("invalid order status")
		}
	}
	out, total, err := s.Repo.ListByStatuses(statuses, page)
	return emptyIfNil(out), total, passthrough(err)
}

// ListForDelivery is the delivery agents' queue: confirmed and in-transit orders.
func (s *OrderService) ListForDelivery(page repository.Page) ([]repository.OrderView, int64, error) {
	return s.ListAll([]entity.OrderStatus{entity.OrderConfirmed, entity.OrderInTransit}, page)
}

func emptyIfNil(v []repository.OrderView) []repository.OrderView {
	if v == nil {
		return []repository.OrderView{}
	}
	return v
}
