package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError reports a failure in the payload; the transport status stays 200.
func RespondError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"error": true, "message": err.Error()})
}

// RespondMessage reports a business refusal such as "Already exists".
func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
