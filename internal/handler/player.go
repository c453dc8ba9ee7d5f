package handler

import (
	"net/http"
	"strconv"

	"github.com/lanternworks/nightmarket/internal/auth"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/player"
	"github.com/lanternworks/nightmarket/internal/trade"
)

// RegisterPlayerRequest represents the request to create a player
type RegisterPlayerRequest struct {
	Username    string `json:"username" validate:"required"`
	DisplayName string `json:"display_name" validate:"omitempty,max=64"`
}

// RegisterPlayerResponse carries the one-time player key and a live session.
// The key is only ever serialized here; keep it safe.
type RegisterPlayerResponse struct {
	Player    domain.Player `json:"player"`
	PlayerKey string        `json:"player_key"`
	Token     string        `json:"token"`
}

// HandleRegisterPlayer creates a new player account
// @Summary Register a player
// @Description Creates a player with starting money and returns the secret player key plus a session token
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "New player"
// @Success 201 {object} RegisterPlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/register [post]
func HandleRegisterPlayer(playerService player.Service, sessions *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, err := playerService.Register(r.Context(), req.Username, req.DisplayName)
		if err != nil {
			log.Error(ErrMsgRegisterFailed, "error", err, "username", req.Username)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		sess := sessions.Issue(p.ID, p.Username)
		log.Info("Player registered", "player_id", p.ID, "username", p.Username)

		respondJSON(w, http.StatusCreated, RegisterPlayerResponse{
			Player:    *p,
			PlayerKey: p.PlayerKey,
			Token:     sess.Token,
		})
	}
}

// HandleGetMe returns the authenticated player's profile
// @Summary Get own profile
// @Description Returns the player with derived inventory capacity and occupancy
// @Tags players
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/me [get]
// @Security SessionAuth
func HandleGetMe(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		profile, err := playerService.GetProfile(r.Context(), sess.PlayerID)
		if err != nil {
			log.Error(ErrMsgGetProfileFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// UpdateLocationRequest represents a position ping.
// Zero values are valid coordinates, so bounds are the only tag checks.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// HandleUpdateLocation records a position ping for the player
// @Summary Update own location
// @Description Records the player's last-known position; writes are buffered and flushed in the background
// @Tags players
// @Accept json
// @Produce json
// @Param request body UpdateLocationRequest true "Position"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/me/location [put]
// @Security SessionAuth
func HandleUpdateLocation(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		var req UpdateLocationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update location"); err != nil {
			return
		}

		pos := domain.Position{Lat: req.Lat, Lng: req.Lng}
		if err := playerService.UpdateLocation(r.Context(), sess.PlayerID, pos); err != nil {
			log.Error(ErrMsgUpdateLocationFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLocationUpdated})
	}
}

// HandleGetInventory returns the player's inventory, newest first
// @Summary Get own inventory
// @Tags players
// @Produce json
// @Success 200 {array} domain.InventoryItem
// @Failure 401 {object} ErrorResponse
// @Router /players/me/inventory [get]
// @Security SessionAuth
func HandleGetInventory(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		items, err := playerService.ListInventory(r.Context(), sess.PlayerID)
		if err != nil {
			log.Error(ErrMsgGetInventoryFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetMyTrades returns the player's recent trades, newest first
// @Summary Get own trade history
// @Tags players
// @Produce json
// @Param limit query int false "Max records"
// @Success 200 {array} domain.TradeRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/me/trades [get]
// @Security SessionAuth
func HandleGetMyTrades(tradeService trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimitParam(w, r)
		if !ok {
			return
		}

		records, err := tradeService.GetTradeHistory(r.Context(), sess.PlayerID, limit)
		if err != nil {
			log.Error(ErrMsgGetTradesFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, records)
	}
}

// HandleClaimBonus pays the once-per-day tier bonus
// @Summary Claim the daily bonus
// @Description Pays the tier-scaled daily bonus; an early claim reports the remaining wait in hours
// @Tags players
// @Produce json
// @Success 200 {object} player.BonusResult
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /players/me/bonus [post]
// @Security SessionAuth
func HandleClaimBonus(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		result, err := playerService.ClaimDailyBonus(r.Context(), sess.PlayerID)
		if err != nil {
			log.Warn(ErrMsgClaimBonusFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Daily bonus claimed", "player_id", sess.PlayerID, "amount", result.Amount)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUpgradeLicense buys the next license tier
// @Summary Upgrade the trading license
// @Description Buys the next tier when funds and trust allow; tier 5 is the ceiling
// @Tags players
// @Produce json
// @Success 200 {object} license.UpgradeResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /players/me/license [post]
// @Security SessionAuth
func HandleUpgradeLicense(licenseService license.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		sess, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		result, err := licenseService.UpgradeLicense(r.Context(), sess.PlayerID)
		if err != nil {
			log.Warn(ErrMsgUpgradeLicenseFailed, "error", err, "player_id", sess.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("License upgraded", "player_id", sess.PlayerID, "tier", result.Tier)
		respondJSON(w, http.StatusOK, result)
	}
}

// parseLimitParam reads the optional ?limit= query parameter. Zero means
// "use the service default"; the services clamp the value themselves.
func parseLimitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
