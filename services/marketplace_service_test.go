package services

import (
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
)

func (s *serviceSuite) TestMarketplaceFilters() {
	s.crop("Wheat", "100", "10", entity.CropApproved)
	s.crop("Basmati Rice", "100", "60", entity.CropListed)
	s.crop("Hidden", "100", "1", entity.CropPending)

	page, err := s.market.Search(MarketplaceQuery{Category: "all"})
	s.Require().NoError(err)
	s.EqualValues(2, page.Total)
	s.Equal(20, page.Limit)

	page, err = s.market.Search(MarketplaceQuery{MinPrice: "50"})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("Basmati Rice", page.Items[0].Name)

	page, err = s.market.Search(MarketplaceQuery{MaxPrice: "50", SearchTerm: "  whe "})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("Wheat", page.Items[0].Name)

	page, err = s.market.Search(MarketplaceQuery{Category: "fruit"})
	s.Require().NoError(err)
	s.NotNil(page.Items)
	s.Empty(page.Items)

	page, err = s.market.Search(MarketplaceQuery{Limit: 500, Offset: -1})
	s.Require().NoError(err)
	s.Equal(100, page.Limit)
	s.Equal(0, page.Offset)
}

func (s *serviceSuite) TestMarketplaceRejectsBadPrices() {
	for _, q := range []MarketplaceQuery{
		{MinPrice: "cheap"},
		{MaxPrice: "-1"},
		{MinPrice: "20", MaxPrice: "10"},
	} {
		_, err := s.market.Search(q)
		s.True(apperr.Is(err, apperr.InvalidInput), "%+v", q)
	}
}
