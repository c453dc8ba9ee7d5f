package handler

import (
	"net/http"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/trade"
)

// BuyItemRequest represents a purchase from a merchant
type BuyItemRequest struct {
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
	ItemName   string `json:"item_name" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// SellItemRequest represents a sale of an owned inventory stack
type SellItemRequest struct {
	InventoryItemID string `json:"inventory_item_id" validate:"required,uuid"`
	MerchantID      string `json:"merchant_id" validate:"required,uuid"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
}

// HandleBuyItem buys an item from a merchant at the current market price
// @Summary Buy an item
// @Description Purchases quantity units from a merchant; checks license, funds and capacity atomically
// @Tags trades
// @Accept json
// @Produce json
// @Param request body BuyItemRequest true "Purchase"
// @Success 200 {object} trade.BuyResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trades/buy [post]
// @Security SessionAuth
func HandleBuyItem(tradeService trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		var req BuyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		result, err := tradeService.Buy(r.Context(), sess.PlayerID, req.MerchantID, req.ItemName, req.Quantity)
		if err != nil {
			log.Warn(ErrMsgBuyFailed, "error", err, "player_id", sess.PlayerID, "item", req.ItemName)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Item bought",
			"player_id", sess.PlayerID,
			"item", result.ItemName,
			"quantity", result.Quantity,
			"total_price", result.TotalPrice)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSellItem sells an owned stack back to a merchant
// @Summary Sell an item
// @Description Sells quantity units of an owned stack at 90% of the current market price
// @Tags trades
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Sale"
// @Success 200 {object} trade.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trades/sell [post]
// @Security SessionAuth
func HandleSellItem(tradeService trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := tradeService.Sell(r.Context(), sess.PlayerID, req.InventoryItemID, req.MerchantID, req.Quantity)
		if err != nil {
			log.Warn(ErrMsgSellFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Item sold",
			"player_id", sess.PlayerID,
			"item", result.ItemName,
			"quantity", result.Quantity,
			"total_price", result.TotalPrice)

		respondJSON(w, http.StatusOK, result)
	}
}
