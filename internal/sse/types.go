package sse

// Stream payloads are compact public views of bus events. Player IDs stay
// off the feed; usernames are public.

// PriceTickPayload is the stream view of one recomputed quote
type PriceTickPayload struct {
	ItemName string `json:"item_name"`
	District string `json:"district"`
	OldPrice int    `json:"old_price"`
	NewPrice int    `json:"new_price"`
}

// TradeFeedPayload is the stream view of one committed trade
type TradeFeedPayload struct {
	Username   string `json:"username"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price"`
	TradeType  string `json:"trade_type"`
}

// LicenseUpgradePayload is the stream view of a tier upgrade
type LicenseUpgradePayload struct {
	Username string `json:"username"`
	NewTier  int    `json:"new_tier"`
	Capacity int    `json:"capacity"`
}

// BonusFeedPayload is the stream view of a daily bonus payout
type BonusFeedPayload struct {
	Username string `json:"username"`
	Amount   int    `json:"amount"`
}

// RestockFeedPayload is the stream view of a completed restock pass
type RestockFeedPayload struct {
	MerchantCount int `json:"merchant_count"`
}
