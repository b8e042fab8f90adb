package entity

type PaymentMethod string

const (
	PaymentAdvance        PaymentMethod = "advance"
	PaymentFull           PaymentMethod = "full"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentAdvance, PaymentFull, PaymentCashOnDelivery:
		return true
	}
	return false
}
