package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"strings"

	"ngo_portal/pkg"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AdminAuth guards the admin console endpoints with a static bearer token.
// Without a configured token every admin request is refused.
func AdminAuth(token string) gin.HandlerFunc {
	token = strings.TrimSpace(token)
	if token == "" {
		log.Printf("[admin][middleware] ADMIN_API_TOKEN not set, admin endpoints disabled")
	}
	return func(c *gin.Context) {
		if token == "" {
			appErr := pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin access is not configured", http.StatusServiceUnavailable)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) ||
			subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(header, bearerPrefix)), []byte(token)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func AdminAuthFromEnv() gin.HandlerFunc {
	return AdminAuth(os.Getenv("ADMIN_API_TOKEN"))
}
