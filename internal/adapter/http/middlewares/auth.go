package middlewares

import (
	"net/http"
	"strings"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"
	"permitpro/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate validates the bearer token on every request and stores the
// resulting Identity in the gin context. A missing token yields 401, a
// present-but-invalid token 403, mirroring the original API contract.
func Authenticate(provider interfaces.IAuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			appErr := pkg.NewDomainErrorSimple("TOKEN_REQUIRED", "Access token required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := provider.ValidateToken(token)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid token", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated caller set by Authenticate.
func IdentityFromContext(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}
