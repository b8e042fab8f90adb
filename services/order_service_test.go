package services

import (
	"time"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
)

func (s *serviceSuite) place(buyer *entity.User, cropID uint, qty, method string) (uint, error) {
	v, err := s.orders.Place(buyer.ID, PlaceOrderInput{
		CropID: cropID, Quantity: dec(qty), PaymentMethod: method, DeliveryAddress: "12 Market Rd, Pune",
	})
	if err != nil {
		return 0, err
	}
	return v.ID, nil
}

func (s *serviceSuite) TestPlaceOrderPricingAndEcho() {
	c := s.crop("Wheat", "500", "10", entity.CropApproved)

	v, err := s.orders.Place(s.buyer.ID, PlaceOrderInput{CropID: c.ID, Quantity: dec("50"), PaymentMethod: "advance", DeliveryAddress: "Farm gate"})
	s.Require().NoError(err)
	s.True(v.TotalPrice.Equal(dec("500")), v.TotalPrice.String())
	s.True(v.AdvanceAmount.Equal(dec("150")), v.AdvanceAmount.String())
	s.Equal(entity.PaymentPartiallyPaid, v.PaymentStatus)
	s.Equal(entity.OrderPending, v.Status)
	s.Equal("Wheat", v.CropName)
	s.Equal("kg", v.CropUnit)
	s.Equal("450", s.cropQty(c.ID))

	v, err = s.orders.Place(s.buyer.ID, PlaceOrderInput{CropID: c.ID, Quantity: dec("1.5"), DeliveryAddress: "Farm gate"})
	s.Require().NoError(err)
	s.Equal(entity.PaymentCashOnDelivery, v.PaymentMethod)
	s.Equal(entity.PaymentUnpaid, v.PaymentStatus)
	s.True(v.AdvanceAmount.IsZero())
	s.True(v.TotalPrice.Equal(dec("15")))
}

func (s *serviceSuite) TestPlaceOrderRejectsBadInput() {
	c := s.crop("Rice", "100", "20", entity.CropListed)

	for _, qty := range []string{"0", "-3", "0.00001"} {
		_, err := s.place(s.buyer, c.ID, qty, "")
		s.True(apperr.Is(err, apperr.InvalidInput), "qty %s: %v", qty, err)
	}

	_, err := s.place(s.buyer, c.ID, "1", "barter")
	s.True(apperr.Is(err, apperr.InvalidInput))

	_, err = s.place(s.buyer, 9999, "1", "")
	s.True(apperr.Is(err, apperr.NotFound))

	s.Equal("100", s.cropQty(c.ID))
}

func (s *serviceSuite) TestPlaceOrderNeedsVisibleCrop() {
	pending := s.crop("Onion", "10", "5", entity.CropPending)
	rejected := s.crop("Garlic", "10", "5", entity.CropRejected)

	for _, id := range []uint{pending.ID, rejected.ID} {
		_, err := s.place(s.buyer, id, "1", "")
		s.True(apperr.Is(err, apperr.NotFound), err)
	}
}

func (s *serviceSuite) TestPlaceOrderCannotOversell() {
	c := s.crop("Millet", "10", "3", entity.CropApproved)

	_, err := s.place(s.buyer, c.ID, "7", "")
	s.Require().NoError(err)

	_, err = s.place(s.otherBuyer, c.ID, "4", "")
	s.True(apperr.Is(err, apperr.InvalidState), err)

	var count int64
	s.db.Model(&entity.Order{}).Count(&count)
	s.EqualValues(1, count, "failed order rolled back")
	s.Equal("3", s.cropQty(c.ID))
}

func (s *serviceSuite) TestPlaceOrderDrainsFractionalStock() {
	c := s.crop("Saffron", "0.3", "900", entity.CropListed)

	first, err := s.place(s.buyer, c.ID, "0.1", "")
	s.Require().NoError(err)
	s.Equal("0.2", s.cropQty(c.ID))

	_, err = s.place(s.otherBuyer, c.ID, "0.2", "")
	s.Require().NoError(err)
	s.Equal("0", s.cropQty(c.ID))

	_, err = s.place(s.otherBuyer, c.ID, "0.0001", "")
	s.True(apperr.Is(err, apperr.InvalidState), err)

	_, err = s.orders.Cancel(first, s.buyer.ID)
	s.Require().NoError(err)
	s.Equal("0.1", s.cropQty(c.ID))
}

func (s *serviceSuite) TestCancelMatrix() {
	c := s.crop("Maize", "100", "2", entity.CropApproved)

	pending, err := s.place(s.buyer, c.ID, "10", "")
	s.Require().NoError(err)
	confirmed, err := s.place(s.buyer, c.ID, "10", "")
	s.Require().NoError(err)
	_, err = s.orders.UpdateStatus(confirmed, entity.OrderConfirmed, entity.RoleAdmin)
	s.Require().NoError(err)

	cases := []struct {
		name  string
		order uint
		buyer uint
		kind  apperr.Kind
	}{
		{"missing order", 4242, s.buyer.ID, apperr.NotFound},
		{"other buyer, pending", pending, s.otherBuyer.ID, apperr.Forbidden},
		{"other buyer, confirmed", confirmed, s.otherBuyer.ID, apperr.Forbidden},
		{"owner, confirmed", confirmed, s.buyer.ID, apperr.InvalidState},
	}
	for _, tc := range cases {
		_, err := s.orders.Cancel(tc.order, tc.buyer)
		s.Equal(tc.kind, apperr.KindOf(err), tc.name)
	}
	s.Equal("80", s.cropQty(c.ID))

	v, err := s.orders.Cancel(pending, s.buyer.ID)
	s.Require().NoError(err)
	s.Equal(entity.OrderCancelled, v.Status)
	s.Equal("90", s.cropQty(c.ID), "cancel returns the reserved quantity")

	_, err = s.orders.Cancel(pending, s.buyer.ID)
	s.True(apperr.Is(err, apperr.InvalidState), "second cancel")
	s.Equal("90", s.cropQty(c.ID))
}

func (s *serviceSuite) TestUpdateStatusRules() {
	c := s.crop("Barley", "100", "2", entity.CropApproved)
	id, err := s.place(s.buyer, c.ID, "5", "")
	s.Require().NoError(err)

	_, err = s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleBuyer)
	s.True(apperr.Is(err, apperr.Forbidden))
	_, err = s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleFarmer)
	s.True(apperr.Is(err, apperr.Forbidden))

	_, err = s.orders.UpdateStatus(id, "shipped", entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.InvalidInput))

	_, err = s.orders.UpdateStatus(404, entity.OrderConfirmed, entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.NotFound))

	_, err = s.orders.UpdateStatus(id, entity.OrderDelivered, entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.InvalidState), "cannot skip ahead")

	v, err := s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleAgentDelivery)
	s.Require().NoError(err)
	s.Equal(entity.OrderConfirmed, v.Status)

	_, err = s.orders.UpdateStatus(id, entity.OrderPending, entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.InvalidState), "no going back")
	_, err = s.orders.UpdateStatus(id, entity.OrderCancelled, entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.InvalidState), "confirmed orders cannot be cancelled")
}

func (s *serviceSuite) TestUpdateStatusCancelRestoresQuantity() {
	c := s.crop("Sorghum", "40", "2", entity.CropApproved)
	id, err := s.place(s.buyer, c.ID, "15", "")
	s.Require().NoError(err)
	s.Equal("25", s.cropQty(c.ID))

	_, err = s.orders.UpdateStatus(id, entity.OrderCancelled, entity.RoleAdmin)
	s.Require().NoError(err)
	s.Equal("40", s.cropQty(c.ID))

	_, err = s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleAdmin)
	s.True(apperr.Is(err, apperr.InvalidState))
	s.Equal("order is already cancelled", apperr.Message(err))
	s.Equal("40", s.cropQty(c.ID))
}

func (s *serviceSuite) TestUpdateStatusIsIdempotent() {
	c := s.crop("Jowar", "40", "2", entity.CropApproved)
	id, err := s.place(s.buyer, c.ID, "4", "")
	s.Require().NoError(err)

	first, err := s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleAdmin)
	s.Require().NoError(err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.orders.UpdateStatus(id, entity.OrderConfirmed, entity.RoleAdmin)
	s.Require().NoError(err)

	s.Equal(first.Status, second.Status)
	s.True(first.TotalPrice.Equal(second.TotalPrice))
	s.True(first.Quantity.Equal(second.Quantity))
	s.Equal(first.PaymentStatus, second.PaymentStatus)
	s.True(second.UpdatedAt.After(first.UpdatedAt), "updated_at touched")
	s.Equal("36", s.cropQty(c.ID))
}

// Wheat: submit, approve, order 50, confirm, ship, deliver, then a late cancel fails.
func (s *serviceSuite) TestWheatLifecycle() {
	crop, err := s.crops.Submit(s.farmer.ID, CropInput{Name: "Wheat", Quantity: "500", Unit: "kg", Price: "10"}, nil)
	s.Require().NoError(err)
	s.Equal(entity.CropPending, crop.Status)

	page, err := s.market.Search(MarketplaceQuery{})
	s.Require().NoError(err)
	s.Empty(page.Items, "pending crops are hidden")

	_, err = s.crops.Review(crop.ID, entity.CropApproved)
	s.Require().NoError(err)
	page, err = s.market.Search(MarketplaceQuery{SearchTerm: "wheat"})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal(crop.ID, page.Items[0].ID)

	order, err := s.orders.Place(s.buyer.ID, PlaceOrderInput{CropID: crop.ID, Quantity: dec("50"), DeliveryAddress: "Nashik"})
	s.Require().NoError(err)
	s.True(order.TotalPrice.Equal(dec("500")))
	s.Equal(entity.OrderPending, order.Status)

	for _, next := range []entity.OrderStatus{entity.OrderConfirmed, entity.OrderInTransit, entity.OrderDelivered} {
		v, err := s.orders.UpdateStatus(order.ID, next, entity.RoleAdmin)
		s.Require().NoError(err)
		s.Equal(next, v.Status)
	}

	_, err = s.orders.Cancel(order.ID, s.buyer.ID)
	s.True(apperr.Is(err, apperr.InvalidState))

	views, err := s.orders.ListForBuyer(s.buyer.ID)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(entity.OrderDelivered, views[0].Status)
	s.Equal("Wheat", views[0].CropName)
}

func (s *serviceSuite) TestOrderListings() {
	c := s.crop("Gram", "100", "4", entity.CropApproved)
	a, _ := s.place(s.buyer, c.ID, "1", "")
	b, _ := s.place(s.otherBuyer, c.ID, "2", "")
	_, err := s.orders.UpdateStatus(b, entity.OrderConfirmed, entity.RoleAdmin)
	s.Require().NoError(err)

	mine, err := s.orders.ListForBuyer(s.buyer.ID)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(a, mine[0].ID)
	s.Equal("meena", mine[0].BuyerName)

	farmerOrders, err := s.orders.ListForFarmer(s.farmer.ID)
	s.Require().NoError(err)
	s.Len(farmerOrders, 2)

	queue, total, err := s.orders.ListForDelivery(repository.NewPage(0, 0))
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal(b, queue[0].ID)

	_, _, err = s.orders.ListAll([]entity.OrderStatus{"lost"}, repository.NewPage(0, 0))
	s.True(apperr.Is(err, apperr.InvalidInput))

	none, err := s.orders.ListForBuyer(s.admin.ID)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}
