package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
	"go-jobboard/internal/shared/response"
)

const (
	// AdminIDHeader carries the caller's numeric person id. It is an
	// out-of-band identity signal, not a session token.
	AdminIDHeader = "X-Admin-Id"

	// AdminIDKey is where the guard stores the resolved id in the gin context.
	AdminIDKey = "admin_id"
)

// AdminResolver is a local interface; any service that can resolve a person id
// and confirm the Admin role fits here.
type AdminResolver interface {
	ResolveAdmin(ctx context.Context, personID uint) error
}

// AdminGuard re-verifies the admin identity on every request: one store read,
// no caching. Missing header is 401, a non-numeric header is 400, and an
// unknown or non-admin person is 403.
func AdminGuard(resolver AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AdminIDHeader)
		if header == "" {
			response.AbortError(c, apperror.New(
				apperror.CodeUnauthorized,
				"Admin credentials required",
				http.StatusUnauthorized,
			))
			return
		}

		id, err := strconv.ParseUint(header, 10, 32)
		if err != nil {
			response.AbortError(c, apperror.New(
				apperror.CodeInvalidInput,
				"Invalid admin identifier",
				http.StatusBadRequest,
			))
			return
		}

		adminID := uint(id)
		if err := resolver.ResolveAdmin(c.Request.Context(), adminID); err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Request = c.Request.WithContext(
			contextutil.WithActorID(c.Request.Context(), adminID),
		)

		c.Next()
	}
}

// AdminID returns the identity the guard resolved for this request.
func AdminID(c *gin.Context) uint {
	if v, ok := c.Get(AdminIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
