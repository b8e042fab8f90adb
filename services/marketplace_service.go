package services

import (
	"strings"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"

	"github.com/shopspring/decimal"
)

type MarketplaceService struct {
	Repo *repository.CropRepository
}

func NewMarketplaceService(repo *repository.CropRepository) *MarketplaceService {
	return &MarketplaceService{Repo: repo}
}

// MarketplaceQuery is the raw query string of a marketplace request.
type MarketplaceQuery struct {
	Category   string
	MinPrice   string
	MaxPrice   string
	SearchTerm string
	Limit      int
	Offset     int
}

type MarketplacePage struct {
	Items  []entity.Crop `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func parsePrice(raw, field string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, apperr.NewInvalidInput(field + " must be a non-negative number")
	}
	return &d, nil
}

// Search lists approved and listed crops matching the filters, newest first.
func (s *MarketplaceService) Search(q MarketplaceQuery) (*MarketplacePage, error) {
	f := repository.CropFilter{
		Category: strings.TrimSpace(q.Category),
		Search:   q.SearchTerm,
	}
	if strings.EqualFold(f.Category, "all") {
		f.Category = ""
	}
	var err error
	if f.MinPrice, err = parsePrice(q.MinPrice, "minPrice"); err != nil {
		return nil, err
	}
	if f.MaxPrice, err = parsePrice(q.MaxPrice, "maxPrice"); err != nil {
		return nil, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, apperr.NewInvalidInput("minPrice must not exceed maxPrice")
	}

	page := repository.NewPage(q.Limit, q.Offset)
	crops, total, err := s.Repo.Search(f, page)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if crops == nil {
		crops = []entity.Crop{}
	}
	return &MarketplacePage{Items: crops, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}
