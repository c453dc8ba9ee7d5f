package domain

// MaxTransactionQuantity caps the quantity of a single buy or sell request
const MaxTransactionQuantity = 1000

// MaxTradeHistoryLimit caps how many trade records a single query returns
const MaxTradeHistoryLimit = 200
