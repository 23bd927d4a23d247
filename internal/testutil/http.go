package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/token"
	"github.com/stretchr/testify/require"
)

const JWTSecret = "test-secret"

// Config returns a configuration usable by route registration in tests.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT.Secret = JWTSecret
	cfg.JWT.ExpiryDays = 7
	cfg.Seasons = Seasons
	return cfg
}

// Bearer returns an Authorization header value for a session of wallet.
func Bearer(t *testing.T, userID uint, wallet string) string {
	t.Helper()
	tok, err := token.GenerateJWT(userID, wallet, nil, JWTSecret, 0)
	require.NoError(t, err)
	return "Bearer " + tok
}

// Do sends a request through h. A non-empty body is sent as JSON.
func Do(h http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
