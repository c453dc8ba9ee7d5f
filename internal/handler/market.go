package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// HandleGetPrices returns current market prices, optionally per district
// @Summary List market prices
// @Description Returns every current quote, or the quotes of one district via ?district=
// @Tags market
// @Produce json
// @Param district query string false "District filter"
// @Success 200 {array} domain.MarketPrice
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /market/prices [get]
func HandleGetPrices(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		district := r.URL.Query().Get("district")
		if district != "" && !ValidDistricts[strings.ToLower(district)] {
			respondError(w, http.StatusBadRequest, ErrMsgUnknownDistrict)
			return
		}

		var err error
		var prices interface{}
		if district == "" {
			prices, err = marketService.ListPrices(r.Context())
		} else {
			prices, err = marketService.ListPricesByDistrict(r.Context(), strings.ToLower(district))
		}
		if err != nil {
			log.Error(ErrMsgGetPricesFailed, "error", err, "district", district)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, prices)
	}
}

// HandleGetItemPrice returns the current quote for one item
// @Summary Get one item's price
// @Tags market
// @Produce json
// @Param item path string true "Item name"
// @Success 200 {object} domain.MarketPrice
// @Failure 404 {object} ErrorResponse
// @Router /market/prices/{item} [get]
func HandleGetItemPrice(marketService market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Item names carry spaces, so the path segment arrives escaped
		item, err := url.PathUnescape(chi.URLParam(r, "item"))
		if err != nil || item == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		price, err := marketService.GetPrice(r.Context(), item)
		if err != nil {
			log.Warn(ErrMsgGetPricesFailed, "error", err, "item", item)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, price)
	}
}

// HandleGetCatalog returns the full item catalog
// @Summary List the item catalog
// @Description Returns every known item with its category, grade, license requirement and base price
// @Tags market
// @Produce json
// @Success 200 {array} domain.CatalogEntry
// @Failure 500 {object} ErrorResponse
// @Router /market/catalog [get]
func HandleGetCatalog(catalog repository.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		entries, err := catalog.ListCatalog(r.Context())
		if err != nil {
			log.Error(ErrMsgGetCatalogFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
