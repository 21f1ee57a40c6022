package controller

import (
	"net/http"
	"time"

	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/middleware"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Secret     string
	Production bool
}

// IssueToken signs whatever identity the caller posts and sets it as the session cookie.
func (a *AuthController) IssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity map[string]interface{}
		if err := c.ShouldBindJSON(&identity); err != nil {
			helper.RespondError(c, err)
			return
		}

		token, err := helper.GenerateToken(identity, a.Secret, time.Now())
		if err != nil {
			respond(c, err)
			return
		}

		a.setCookie(c, token, 0)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (a *AuthController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.setCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (a *AuthController) setCookie(c *gin.Context, value string, maxAge int) {
	if a.Production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", a.Production, true)
}
