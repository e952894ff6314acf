package auth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"santix-backoffice/config"

	"github.com/gin-gonic/gin"
)

func mobileRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/mobile/start", GoogleMobileStart)
	r.GET("/auth/mobile/callback", GoogleMobileCallback)
	return r
}

func get(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestMobileStartRejectsBadRedirect(t *testing.T) {
	config.GOOGLE_CLIENT_ID = "client-id"
	r := mobileRouter()

	tests := []struct {
		name   string
		target string
	}{
		{"missing", "/auth/mobile/start"},
		{"wrong scheme", "/auth/mobile/start?redirect_uri=evil%3A%2F%2Fcallback"},
		{"wrong host", "/auth/mobile/start?redirect_uri=santix%3A%2F%2Felsewhere"},
		{"https", "/auth/mobile/start?redirect_uri=https%3A%2F%2Fexample.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := get(t, r, tt.target); w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestMobileStartRedirectsToGoogle(t *testing.T) {
	config.GOOGLE_CLIENT_ID = "client-id"
	config.APP_BASE_URL = "https://api.santix.example"
	r := mobileRouter()

	w := get(t, r, "/auth/mobile/start?redirect_uri=santix%3A%2F%2Fauth-callback")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Host != "accounts.google.com" {
		t.Errorf("redirect host = %q", loc.Host)
	}

	q := loc.Query()
	if q.Get("code_challenge") == "" || q.Get("code_challenge_method") != "S256" {
		t.Errorf("PKCE challenge missing: %v", q)
	}
	if q.Get("redirect_uri") != "https://api.santix.example/auth/mobile/callback" {
		t.Errorf("callback = %q", q.Get("redirect_uri"))
	}
	if !strings.Contains(q.Get("scope"), "openid") {
		t.Errorf("scope = %q", q.Get("scope"))
	}
	if q.Get("prompt") != "select_account" {
		t.Errorf("prompt = %q", q.Get("prompt"))
	}

	// The state blob must decode and carry the verifier plus return target.
	state, err := decodeState(q.Get("state"), time.Now())
	if err != nil {
		t.Fatalf("state does not decode: %v", err)
	}
	if state.ReturnURL != mobileRedirectURI || state.Verifier == "" {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestMobileCallbackRejectsBadState(t *testing.T) {
	config.GOOGLE_CLIENT_ID = "client-id"
	r := mobileRouter()

	noVerifier := base64.RawURLEncoding.EncodeToString([]byte(`{"r":"santix://auth-callback","t":1}`))
	expired, _ := encodeState(mobileState{
		ReturnURL: mobileRedirectURI,
		Verifier:  "ver",
		IssuedAt:  time.Now().Add(-time.Hour).UnixMilli(),
	})

	tests := []struct {
		name   string
		target string
	}{
		{"missing code", "/auth/mobile/callback?state=abc"},
		{"missing state", "/auth/mobile/callback?code=abc"},
		{"undecodable state", "/auth/mobile/callback?code=abc&state=%21%21%21"},
		{"state missing verifier", "/auth/mobile/callback?code=abc&state=" + noVerifier},
		{"expired state", "/auth/mobile/callback?code=abc&state=" + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// All of these must fail before any token exchange is attempted,
			// so no network access happens here.
			if w := get(t, r, tt.target); w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestDecodeIDTokenClaims(t *testing.T) {
	payload, _ := json.Marshal(map[string]string{
		"sub":   "google-sub-1",
		"email": "ana@example.com",
		"name":  "Ana",
	})
	token := "eyJhbGciOiJSUzI1NiJ9." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"

	claims, err := decodeIDTokenClaims(token)
	if err != nil {
		t.Fatalf("decodeIDTokenClaims: %v", err)
	}
	if claims.Sub != "google-sub-1" || claims.Email != "ana@example.com" || claims.Name != "Ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := decodeIDTokenClaims("only-one-part"); err == nil {
		t.Error("malformed token accepted")
	}
	if _, err := decodeIDTokenClaims("a.%%%%.c"); err == nil {
		t.Error("undecodable payload accepted")
	}
}
