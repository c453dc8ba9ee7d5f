package domain

import "time"

// Trade record types
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// TradeRecord is one row of the append-only trade audit log.
// Exactly one of SellerID/BuyerID is set: buys carry the buyer, sells the
// seller. Records are never updated or deleted.
type TradeRecord struct {
	ID         string    `json:"id"`
	SellerID   *string   `json:"seller_id,omitempty"`
	BuyerID    *string   `json:"buyer_id,omitempty"`
	MerchantID string    `json:"merchant_id"`
	ItemName   string    `json:"item_name"`
	Category   string    `json:"category"`
	TotalPrice int       `json:"total_price"`
	Quantity   int       `json:"quantity"`
	Type       string    `json:"type"`
	Location   Position  `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
}
