package repository

import (
	"strings"

	"github.com/AGTechathon/Agriminds/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CropRepository struct {
	DB *gorm.DB
}

func NewCropRepository(db *gorm.DB) *CropRepository {
	return &CropRepository{DB: db}
}

func (r *CropRepository) WithTx(tx *gorm.DB) *CropRepository {
	return &CropRepository{DB: tx}
}

func (r *CropRepository) Create(c *entity.Crop) error {
	return r.DB.Create(c).Error
}

func (r *CropRepository) FindByID(id uint) (*entity.Crop, error) {
	var c entity.Crop
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDForUpdate takes a row lock where the dialect supports it (postgres, mysql).
func (r *CropRepository) FindByIDForUpdate(id uint) (*entity.Crop, error) {
	var c entity.Crop
	q := r.DB
	if r.DB.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CropRepository) ListByFarmer(farmerID uint) ([]entity.Crop, error) {
	var crops []entity.Crop
	err := r.DB.Where("farmer_id = ?", farmerID).
		Order("created_at DESC, id DESC").
		Find(&crops).Error
	return crops, err
}

func (r *CropRepository) ListByStatus(statuses []entity.CropStatus, page Page) ([]entity.Crop, int64, error) {
	q := r.DB.Model(&entity.Crop{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var crops []entity.Crop
	err := q.Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&crops).Error
	return crops, total, err
}

// CropFilter narrows the marketplace listing. Zero values mean "no filter".
type CropFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

// Search lists visible crops only, newest first.
func (r *CropRepository) Search(f CropFilter, page Page) ([]entity.Crop, int64, error) {
	build := func() *gorm.DB {
		q := r.DB.Model(&entity.Crop{}).Where("status IN ?", entity.VisibleCropStatuses())
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.MinPrice != nil {
			q = q.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("price <= ?", *f.MaxPrice)
		}
		if term := strings.TrimSpace(f.Search); term != "" {
			like := "%" + strings.ToLower(term) + "%"
			q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
		}
		return q
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var crops []entity.Crop
	err := build().
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&crops).Error
	return crops, total, err
}

// UpdateStatusGuard only moves the crop when it is still in from.
func (r *CropRepository) UpdateStatusGuard(id uint, from, to entity.CropStatus) (int64, error) {
	res := r.DB.Model(&entity.Crop{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// DecrementQuantity reserves qty from a visible crop last read as holding from.
// The new amount is computed here so the column never goes through float
// arithmetic. Zero rows means from is stale, the crop is hidden, or from < qty.
func (r *CropRepository) DecrementQuantity(id uint, from, qty decimal.Decimal) (int64, error) {
	if from.LessThan(qty) {
		return 0, nil
	}
	res := r.DB.Model(&entity.Crop{}).
		Where("id = ? AND quantity = ? AND status IN ?", id, from, entity.VisibleCropStatuses()).
		Update("quantity", from.Sub(qty))
	return res.RowsAffected, res.Error
}

// RestoreQuantity gives qty back to a crop last read as holding from.
func (r *CropRepository) RestoreQuantity(id uint, from, qty decimal.Decimal) (int64, error) {
	res := r.DB.Model(&entity.Crop{}).
		Where("id = ? AND quantity = ?", id, from).
		Update("quantity", from.Add(qty))
	return res.RowsAffected, res.Error
}

// DeletePending soft-deletes an owned crop that is still pending.
func (r *CropRepository) DeletePending(id, farmerID uint) (int64, error) {
	res := r.DB.Where("id = ? AND farmer_id = ? AND status = ?", id, farmerID, entity.CropPending).
		Delete(&entity.Crop{})
	return res.RowsAffected, res.Error
}
