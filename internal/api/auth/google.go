package auth

import (
	"errors"
	"net/http"

	"santix-backoffice/config"
	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
)

type googleIDClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// verifyGoogleIDToken runs full OIDC verification (signature, issuer,
// audience, expiry) against Google's provider metadata.
func verifyGoogleIDToken(c *gin.Context, rawIDToken string) (*googleIDClaims, error) {
	ctx := c.Request.Context()

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, errors.New("failed to init google oidc provider")
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: config.GOOGLE_CLIENT_ID,
	})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}

	if claims.Sub == "" || claims.Email == "" {
		return nil, errors.New("id_token missing sub/email")
	}
	return &claims, nil
}

// POST /auth/google
//
// Admin-panel sign-in: the frontend obtains a Google id token and trades it
// here for a short-lived app JWT.
func GoogleSignIn(c *gin.Context) {
	var body struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IDToken == "" {
		httpx.Error(c, http.StatusBadRequest, "idToken is required")
		return
	}

	claims, err := verifyGoogleIDToken(c, body.IDToken)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
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

	token, err := issueAppToken(user)
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	httpx.OK(c, http.StatusOK, gin.H{"token": token})
}
