package entity

import "github.com/shopspring/decimal"

func init() {
	// money and quantities go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&User{}, &FarmerProfile{}, &BuyerProfile{}, &AgentProfile{},
		&Crop{}, &Order{}, &QualityInspection{},
	}
}
