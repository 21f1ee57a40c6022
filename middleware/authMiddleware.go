package middleware

import (
	"log"
	"net/http"

	helper "flavor-fusion-server/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie = "token"
	ClaimsKey   = "claims"
	EmailKey    = "email"
)

// Authentication lets a request through only with a valid session cookie and
// exposes the decoded claims to the handlers that follow.
func Authentication(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken, err := c.Cookie(TokenCookie)
		if err != nil || clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"auth": false, "message": "Not authorized"})
			return
		}

		claims, err := helper.ValidToken(clientToken, secret)
		if err != nil {
			log.Printf("auth: rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, helper.EmailFromClaims(claims))
		c.Next()
	}
}

// Claims returns what Authentication stored, or nil on an ungated route.
func Claims(c *gin.Context) jwt.MapClaims {
	claims, _ := c.Get(ClaimsKey)
	mc, _ := claims.(jwt.MapClaims)
	return mc
}

// RequireEmailMatch aborts with 401 unless the email query parameter is the
// token's email.
func RequireEmailMatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" || email != c.GetString(EmailKey) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access Forbidden"})
			return
		}
		c.Next()
	}
}
