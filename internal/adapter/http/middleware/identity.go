package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

const callerContextKey = "caller"

// IdentityMiddleware derives the caller identity from the X-User-ID and
// X-User-Admin headers set by the session layer in front of this
// service. Identity is carried explicitly from here on; nothing below
// the adapter reads ambient state.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID != "" {
			admin := c.GetHeader("X-User-Admin")
			c.Set(callerContextKey, domain.CallerIdentity{
				UserID:  userID,
				IsAdmin: admin == "1" || admin == "true",
			})
		}
		c.Next()
	}
}

// GetCaller returns the caller identity, zero-valued for anonymous
// requests.
func GetCaller(c *gin.Context) domain.CallerIdentity {
	if value, exists := c.Get(callerContextKey); exists {
		if caller, ok := value.(domain.CallerIdentity); ok {
			return caller
		}
	}
	return domain.CallerIdentity{}
}
