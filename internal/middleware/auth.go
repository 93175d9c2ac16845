package middleware

import (
	"net/http"
	"strings"

	"github.com/umyrahbh/healthassist/internal/auth"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

// Auth validates the Bearer token and stores the authenticated actor in
// the request context.
func Auth(jwtSecret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		claims, err := auth.ParseValidate(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(actorKey, domain.Actor{ID: claims.Sub, Role: claims.Role})
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access required"},
			)
			return
		}
		c.Next()
	}
}

func GetActor(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
