package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery is the last-resort catch-all: panics become a generic 500 JSON,
// with the panic detail attached only outside production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		body := gin.H{"error": "internal server error"}
		if !production {
			body["detail"] = fmt.Sprint(err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
