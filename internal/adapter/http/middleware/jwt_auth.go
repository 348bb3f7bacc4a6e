package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shop_orders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKeyUserID holds the authenticated owner id (the token subject).
const ContextKeyUserID = "user_id"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// JWTAuth validates HS256 bearer tokens signed with secret and stores the
// subject under ContextKeyUserID. An empty secret disables authentication.
func JWTAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		log.Printf("[auth][middleware] JWT_SECRET not set; authentication disabled")
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		subject, err := ParseSubject(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextKeyUserID, subject)
		c.Next()
	}
}

// ParseSubject verifies token and returns its sub claim.
func ParseSubject(token, secret string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// UserID returns the authenticated user, or "" when authentication is off.
func UserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}
