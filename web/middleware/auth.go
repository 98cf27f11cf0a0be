// Package middleware provides the gin middleware chain of the API: request
// identification, request logging, token authentication and ability gating.
package middleware

import (
	"strings"

	"postboard/database/model"
	"postboard/web/entity"
	"postboard/web/service"
	"postboard/web/token"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// TokenAuth resolves the bearer token into an identity and stashes it on the
// request context. Requests without a verifiable token are rejected with 401.
func TokenAuth() gin.HandlerFunc {
	tokenService := service.TokenService{}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortWith(c, entity.Unauthenticated("Unauthenticated"))
			return
		}

		identity, err := tokenService.Resolve(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			abortWith(c, entity.Unauthenticated("Unauthenticated"))
			return
		}

		token.SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAbility rejects with 403 unless the resolved token was issued with
// the given ability. Must run after TokenAuth.
func RequireAbility(a model.Ability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := token.GetIdentity(c)
		if identity == nil {
			abortWith(c, entity.Unauthenticated("Unauthenticated"))
			return
		}
		if !identity.Can(a) {
			abortWith(c, entity.Forbidden("Unauthorized"))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, apiErr *entity.ApiError) {
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr.Response())
}
