package handler

import (
	"net/http"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/merchant"
	"github.com/lanternworks/nightmarket/internal/trade"
)

// HandleAdminRecomputePrices triggers a price recompute pass outside the schedule
// @Summary Recompute all prices now
// @Description Advances every quote one step of the price walk, same as the scheduled pass
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/recompute-prices [post]
// @Security ApiKeyAuth
func HandleAdminRecomputePrices(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info("Manual price recompute triggered")

		updated, err := marketService.RecomputeAll(r.Context())
		if err != nil {
			log.Error(ErrMsgRecomputeFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Manual price recompute completed", "prices_updated", updated)

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":        MsgRecomputeCompleted,
			"prices_updated": updated,
		})
	}
}

// HandleAdminRestock triggers a merchant restock pass outside the schedule
// @Summary Restock all merchants now
// @Description Refreshes restock timestamps and relaxes demand multipliers toward neutral
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/restock [post]
// @Security ApiKeyAuth
func HandleAdminRestock(merchantService merchant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info("Manual merchant restock triggered")

		restocked, err := merchantService.Restock(r.Context())
		if err != nil {
			log.Error(ErrMsgRestockFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Manual merchant restock completed", "merchants_restocked", restocked)

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":             MsgRestockCompleted,
			"merchants_restocked": restocked,
		})
	}
}

// HandleAdminListTrades returns the newest trades across the whole market
// @Summary List recent trades
// @Tags admin
// @Produce json
// @Param limit query int false "Max records"
// @Success 200 {array} domain.TradeRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/trades [get]
// @Security ApiKeyAuth
func HandleAdminListTrades(tradeService trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, ok := parseLimitParam(w, r)
		if !ok {
			return
		}

		records, err := tradeService.ListRecentTrades(r.Context(), limit)
		if err != nil {
			log.Error(ErrMsgGetTradesFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, records)
	}
}
