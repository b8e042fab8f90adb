package services

import (
	"github.com/AGTechathon/Agriminds/entity"

	"github.com/shopspring/decimal"
)

var advanceRate = decimal.RequireFromString("0.3")

// Quote holds the money fields derived for a new order.
type Quote struct {
	Total         decimal.Decimal
	Advance       decimal.Decimal
	PaymentStatus entity.PaymentStatus
}

// QuoteOrder prices an order. The total is exact; the advance is 30% of it
// rounded to 2 places, half away from zero.
func QuoteOrder(price, qty decimal.Decimal, method entity.PaymentMethod) Quote {
	q := Quote{
		Total:         price.Mul(qty),
		Advance:       decimal.Zero,
		PaymentStatus: entity.PaymentUnpaid,
	}
	switch method {
	case entity.PaymentAdvance:
		q.Advance = q.Total.Mul(advanceRate).Round(2)
		q.PaymentStatus = entity.PaymentPartiallyPaid
	case entity.PaymentFull:
		q.PaymentStatus = entity.PaymentFullyPaid
	}
	return q
}
