package handler

import (
	"net/http"

	"github.com/lanternworks/nightmarket/internal/auth"
)

const (
	testPlayerID = "3f2b8c1d-4e5a-4f6b-8c7d-9e0f1a2b3c4d"
	testUsername = "vesna"
)

// authedRequest attaches a session to the request context the way the
// session middleware does
func authedRequest(req *http.Request) *http.Request {
	sess := &auth.Session{Token: "test-token", PlayerID: testPlayerID, Username: testUsername}
	return req.WithContext(auth.WithSession(req.Context(), sess))
}
