package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-jobboard/internal/middleware"
	personerrors "go-jobboard/internal/person/errors"
)

type fakeResolver struct {
	err      error
	resolved []uint
}

func (f *fakeResolver) ResolveAdmin(_ context.Context, personID uint) error {
	f.resolved = append(f.resolved, personID)
	return f.err
}

func setupGuardedRouter(resolver middleware.AdminResolver) (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var seenID uint
	router.GET("/admin/ping", middleware.AdminGuard(resolver), func(c *gin.Context) {
		seenID = middleware.AdminID(c)
		c.Status(http.StatusOK)
	})
	return router, &seenID
}

func TestAdminGuard(t *testing.T) {
	t.Run("Missing header", func(t *testing.T) {
		resolver := &fakeResolver{}
		router, _ := setupGuardedRouter(resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, resolver.resolved)
	})

	t.Run("Non numeric header", func(t *testing.T) {
		resolver := &fakeResolver{}
		router, _ := setupGuardedRouter(resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.AdminIDHeader, "abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, resolver.resolved)
	})

	t.Run("Resolver rejects", func(t *testing.T) {
		resolver := &fakeResolver{err: personerrors.ErrAdminRequired}
		router, _ := setupGuardedRouter(resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.AdminIDHeader, "9")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, []uint{9}, resolver.resolved)
	})

	t.Run("Admin passes and id is exposed", func(t *testing.T) {
		resolver := &fakeResolver{}
		router, seenID := setupGuardedRouter(resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.AdminIDHeader, "42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), *seenID)
	})
}
