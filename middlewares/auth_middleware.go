package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpkhazaana-eng/production-app/utils"
)

// AdminAuth protects the ops endpoints with a bearer token from
// /admin/login. Shopper routes stay anonymous.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("missing bearer token"))
			c.Abort()
			return
		}

		claims, err := utils.ParseAdminToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
