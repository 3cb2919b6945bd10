package models

// ItemInnerCircle is the subscription product; a verified purchase of it
// grants the premium flag.
const ItemInnerCircle = "inner_circle"

// Order is a created payment order, round-tripped through the external
// checkout widget and the verification call. Transient.
type Order struct {
	ID              string `json:"order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	RazorpayOrderID string `json:"razorpay_order_id"`
}

// CatalogItem is one entry of the fixed commerce catalog on the profile
// screen. Amount is in paise.
type CatalogItem struct {
	ID           string
	Title        string
	Description  string
	Icon         string
	Amount       int64
	Subscription bool
}
