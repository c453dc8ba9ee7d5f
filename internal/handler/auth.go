package handler

import (
	"net/http"

	"github.com/lanternworks/nightmarket/internal/auth"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/player"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	PlayerKey string `json:"player_key" validate:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token  string        `json:"token"`
	Player domain.Player `json:"player"`
}

// HandleLogin verifies a username/player-key pair and issues a session
// @Summary Log in
// @Description Verifies the player key issued at registration and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func HandleLogin(playerService player.Service, sessions *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		p, err := playerService.Login(r.Context(), req.Username, req.PlayerKey)
		if err != nil {
			log.Warn(ErrMsgLoginFailed, "username", req.Username, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		sess := sessions.Issue(p.ID, p.Username)
		log.Info("Player logged in", "player_id", p.ID, "username", p.Username)

		respondJSON(w, http.StatusOK, LoginResponse{Token: sess.Token, Player: *p})
	}
}

// sessionOrAbort pulls the authenticated session from the request context.
// The auth middleware puts it there; a miss means the route was mounted
// without the middleware, which is a server bug, but the client still gets
// a clean 401.
func sessionOrAbort(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	s, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return nil, false
	}
	return s, true
}
