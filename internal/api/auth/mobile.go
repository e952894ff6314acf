package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"santix-backoffice/config"
	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// mobileRedirectURI is the only deep link the mobile flow will hand a token
// to. Anything else is rejected before a single secret is touched.
const mobileRedirectURI = "santix://auth-callback"

func mobileOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GOOGLE_CLIENT_ID,
		ClientSecret: config.GOOGLE_CLIENT_SECRET,
		RedirectURL:  config.APP_BASE_URL + "/auth/mobile/callback",
		Scopes: []string{
			"openid",
			"email",
			"profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GET /auth/mobile/start?redirect_uri=santix://auth-callback
//
// Opens the PKCE flow: generates a verifier, embeds it with the return target
// in the state blob, and sends the device browser to Google.
func GoogleMobileStart(c *gin.Context) {
	redirectURI := c.Query("redirect_uri")
	if redirectURI == "" {
		httpx.Error(c, http.StatusBadRequest, "redirect_uri is required")
		return
	}
	if !strings.EqualFold(redirectURI, mobileRedirectURI) {
		httpx.Error(c, http.StatusBadRequest, "Invalid redirect_uri (expected "+mobileRedirectURI+")")
		return
	}

	verifier := oauth2.GenerateVerifier()

	state, err := encodeState(mobileState{
		ReturnURL: redirectURI,
		Verifier:  verifier,
		IssuedAt:  time.Now().UnixMilli(),
	})
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to generate state")
		return
	}

	authURL := mobileOAuthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOnline,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	c.Redirect(http.StatusFound, authURL)
}

// GET /auth/mobile/callback?code=&state=
//
// Completes the handoff: exchanges the code with the original verifier,
// upserts the user from the id-token claims and bounces back into the app
// with a short-lived token.
func GoogleMobileCallback(c *gin.Context) {
	code := c.Query("code")
	stateBlob := c.Query("state")
	if code == "" || stateBlob == "" {
		httpx.Error(c, http.StatusBadRequest, "Missing code/state")
		return
	}

	state, err := decodeState(stateBlob, time.Now())
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	tok, err := mobileOAuthConfig().Exchange(c.Request.Context(), code, oauth2.VerifierOption(state.Verifier))
	if err != nil {
		log.Println("Mobile token exchange failed:", err)
		httpx.Error(c, http.StatusBadRequest, "Token exchange failed")
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		httpx.Error(c, http.StatusBadRequest, "Missing id_token")
		return
	}

	// The claims segment is decoded without signature verification: the token
	// arrived over the authenticated server-to-server exchange, not from the
	// redirect.
	claims, err := decodeIDTokenClaims(rawIDToken)
	if err != nil || claims.Sub == "" || claims.Email == "" {
		httpx.Error(c, http.StatusBadRequest, "Invalid id token claims")
		return
	}

	user, err := ensureGoogleUser(dbUserStore{database.DB}, googleProfile{
		Sub:   claims.Sub,
		Email: claims.Email,
		Name:  claims.Name,
	})
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to resolve user")
		return
	}

	appToken, err := issueAppToken(user)
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	// Re-validate the return target from the state blob; a tampered blob
	// falls back to the fixed deep link.
	returnURL := sanitizeReturnURL(state.ReturnURL)
	q := returnURL.Query()
	q.Set("token", appToken)
	returnURL.RawQuery = q.Encode()

	log.Printf("Mobile sign-in for %s sub=%s...", claims.Email, truncate(claims.Sub, 8))
	log.Printf("Mobile handoff redirect to %s://%s?token=%s...", returnURL.Scheme, returnURL.Host, truncate(appToken, 12))

	c.Redirect(http.StatusFound, returnURL.String())
}

func decodeIDTokenClaims(rawIDToken string) (*googleIDClaims, error) {
	parts := strings.Split(rawIDToken, ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed id token")
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}
	var claims googleIDClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func sanitizeReturnURL(target string) *url.URL {
	fallback := &url.URL{Scheme: "santix", Host: "auth-callback"}
	u, err := url.Parse(target)
	if err != nil {
		return fallback
	}
	if !strings.EqualFold(u.Scheme, "santix") || !strings.EqualFold(u.Host, "auth-callback") {
		return fallback
	}
	return u
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
