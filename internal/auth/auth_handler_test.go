package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-jobboard/internal/auth"
	authMock "go-jobboard/internal/auth/mock"
	"go-jobboard/internal/domain"
)

func setupRouter(t *testing.T) (*gin.Engine, *authMock.MockRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := authMock.NewMockRepository(ctrl)
	handler := auth.NewHandler(auth.NewService(mockRepo))

	r := gin.New()
	auth.RegisterRoutes(r.Group(""), handler, zap.NewNop())
	return r, mockRepo
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Register(t *testing.T) {
	t.Run("Present but empty fields pass binding", func(t *testing.T) {
		r, mockRepo := setupRouter(t)

		mockRepo.EXPECT().
			EmailTaken(gomock.Any(), "").
			Return(false, nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auth.Account) error {
				assert.NotNil(t, a.Password)
				assert.True(t, auth.VerifyPassword("", *a.Password))
				return nil
			})

		w := postJSON(r, "/register",
			`{"first_name":"","last_name":"","email":"","password":""}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing password key fails binding", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := postJSON(r, "/register",
			`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password")
	})

	t.Run("Unconventional email accepted", func(t *testing.T) {
		r, mockRepo := setupRouter(t)

		mockRepo.EXPECT().
			EmailTaken(gomock.Any(), "not-an-email").
			Return(false, nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		w := postJSON(r, "/register",
			`{"first_name":"J","last_name":"D","email":"not-an-email","password":"pw"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("Empty password present reaches the comparison", func(t *testing.T) {
		r, mockRepo := setupRouter(t)

		hashed, _ := auth.HashPassword("secret123")
		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "jane@example.com").
			Return(&auth.Account{
				PersonID: 3,
				Email:    "jane@example.com",
				Role:     domain.RoleApplicant,
				Password: &hashed,
			}, nil)

		w := postJSON(r, "/login", `{"email":"jane@example.com","password":""}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect password")
	})

	t.Run("Missing password key fails binding", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := postJSON(r, "/login", `{"email":"jane@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
