package entity

type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially-paid"
	PaymentFullyPaid     PaymentStatus = "fully-paid"
)
