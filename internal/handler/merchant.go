package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/merchant"
)

// HandleListMerchants returns merchants, optionally filtered by district
// @Summary List merchants
// @Tags merchants
// @Produce json
// @Param district query string false "District filter"
// @Success 200 {array} domain.Merchant
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /merchants [get]
func HandleListMerchants(merchantService merchant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		district := r.URL.Query().Get("district")
		if district != "" && !ValidDistricts[strings.ToLower(district)] {
			respondError(w, http.StatusBadRequest, ErrMsgUnknownDistrict)
			return
		}

		merchants, err := merchantService.ListMerchants(r.Context(), strings.ToLower(district))
		if err != nil {
			log.Error(ErrMsgGetMerchantsFailed, "error", err, "district", district)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, merchants)
	}
}

// HandleGetMerchant returns one merchant by ID
// @Summary Get a merchant
// @Tags merchants
// @Produce json
// @Param merchantID path string true "Merchant ID"
// @Success 200 {object} domain.Merchant
// @Failure 404 {object} ErrorResponse
// @Router /merchants/{merchantID} [get]
func HandleGetMerchant(merchantService merchant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		merchantID := chi.URLParam(r, "merchantID")

		m, err := merchantService.GetMerchant(r.Context(), merchantID)
		if err != nil {
			log.Warn(ErrMsgGetMerchantsFailed, "error", err, "merchant_id", merchantID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, m)
	}
}

// HandleNearbyMerchants returns merchants within a radius, nearest first
// @Summary Find nearby merchants
// @Description Returns merchants within radius meters of the given point, sorted by distance
// @Tags merchants
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters"
// @Success 200 {array} domain.MerchantDistance
// @Failure 400 {object} ErrorResponse
// @Router /merchants/nearby [get]
func HandleNearbyMerchants(merchantService merchant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		lat, ok := parseFloatParam(w, r, "lat", true)
		if !ok {
			return
		}
		lng, ok := parseFloatParam(w, r, "lng", true)
		if !ok {
			return
		}
		// Radius is optional; zero lets the service apply its default
		radius, ok := parseFloatParam(w, r, "radius", false)
		if !ok {
			return
		}

		nearby, err := merchantService.NearbyMerchants(r.Context(), lat, lng, radius)
		if err != nil {
			log.Warn(ErrMsgGetMerchantsFailed, "error", err, "lat", lat, "lng", lng)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, nearby)
	}
}

// parseFloatParam reads a float query parameter, writing the error response
// itself when the value is missing-but-required or malformed
func parseFloatParam(w http.ResponseWriter, r *http.Request, name string, required bool) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
			return 0, false
		}
		return 0, true
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return val, true
}
