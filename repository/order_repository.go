package repository

import (
	"time"

	"github.com/AGTechathon/Agriminds/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderView is an order joined with the crop fields the clients display.
type OrderView struct {
	ID              uint                 `json:"id"`
	CropID          *uint                `json:"cropId"`
	BuyerID         uint                 `json:"buyerId"`
	BuyerName       string               `json:"buyerName"`
	CropName        string               `json:"cropName"`
	CropDescription string               `json:"cropDescription"`
	CropUnit        string               `json:"cropUnit"`
	FarmerID        *uint                `json:"farmerId"`
	Quantity        decimal.Decimal      `json:"quantity"`
	TotalPrice      decimal.Decimal      `json:"totalPrice"`
	AdvanceAmount   decimal.Decimal      `json:"advanceAmount"`
	Status          entity.OrderStatus   `json:"status"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod"`
	PaymentStatus   entity.PaymentStatus `json:"paymentStatus"`
	DeliveryAddress string               `json:"deliveryAddress"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func (r *OrderRepository) views() *gorm.DB {
	// unscoped join on crops so orders keep their crop details after a soft delete
	return r.DB.Table("orders AS o").
		Select(`o.id, o.crop_id, o.buyer_id, u.username AS buyer_name,
			c.name AS crop_name, c.description AS crop_description, c.unit AS crop_unit, c.farmer_id,
			o.quantity, o.total_price, o.advance_amount, o.status, o.payment_method, o.payment_status,
			o.delivery_address, o.created_at, o.updated_at`).
		Joins("LEFT JOIN crops c ON c.id = o.crop_id").
		Joins("LEFT JOIN users u ON u.id = o.buyer_id").
		Where("o.deleted_at IS NULL")
}

func (r *OrderRepository) FindView(id uint) (*OrderView, error) {
	var v OrderView
	res := r.views().Where("o.id = ?", id).Limit(1).Scan(&v)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *OrderRepository) ListForBuyer(buyerID uint) ([]OrderView, error) {
	var out []OrderView
	err := r.views().Where("o.buyer_id = ?", buyerID).
		Order("o.created_at DESC, o.id DESC").Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForFarmer(farmerID uint) ([]OrderView, error) {
	var out []OrderView
	err := r.views().Where("c.farmer_id = ?", farmerID).
		Order("o.created_at DESC, o.id DESC").Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatuses(statuses []entity.OrderStatus, page Page) ([]OrderView, int64, error) {
	var total int64
	count := r.DB.Model(&entity.Order{})
	if len(statuses) > 0 {
		count = count.Where("status IN ?", statuses)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.views()
	if len(statuses) > 0 {
		q = q.Where("o.status IN ?", statuses)
	}
	var out []OrderView
	err := q.Order("o.created_at DESC, o.id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Scan(&out).Error
	return out, total, err
}

// UpdateStatusGuard moves the order only while it is still in from.
func (r *OrderRepository) UpdateStatusGuard(id uint, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// Touch bumps updated_at and nothing else.
func (r *OrderRepository) Touch(id uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
