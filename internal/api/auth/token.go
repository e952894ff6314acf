package auth

import (
	"time"

	"santix-backoffice/config"
	"santix-backoffice/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

const appTokenTTL = 15 * time.Minute

// issueAppToken signs the short-lived application JWT handed to the admin
// panel and the mobile app after a successful Google sign-in.
func issueAppToken(user *users.User) (string, error) {
	var name interface{}
	if user.Name != nil {
		name = *user.Name
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   user.ID,
		"email": user.Email,
		"name":  name,
		"role":  user.Role,
		"exp":   time.Now().Add(appTokenTTL).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}
