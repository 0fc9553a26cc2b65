package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-invmis/internal/auth"
	autherrors "go-invmis/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	refreshFn func(ctx context.Context, token string) (string, string, auth.AuthResponse, error)
	getMeFn   func(ctx context.Context, userID string) (*auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, email, password)
}
func (f *fakeAuthService) RefreshToken(ctx context.Context, token string) (string, string, auth.AuthResponse, error) {
	return f.refreshFn(ctx, token)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}

func TestHandler_Login(t *testing.T) {
	t.Run("web client gets cookies", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "acc", "ref", auth.AuthResponse{ID: "u1", Email: email}, nil
			},
		}, true)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("X-Client-Type", "web")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("api client gets body only", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "acc", "ref", auth.AuthResponse{ID: "u1"}, nil
			},
		}, false)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		var env struct {
			Data map[string]json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.JSONEq(t, `"acc"`, string(env.Data["access_token"]))
	})

	t.Run("bad credentials", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}, false)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	})

	t.Run("invalid body", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{}, false)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RefreshToken_MissingCookie(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{}, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	c.Request.Header.Set("X-Client-Type", "web")

	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_REFRESH_TOKEN")
}

func TestHandler_Me(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{
		getMeFn: func(ctx context.Context, userID string) (*auth.AuthResponse, error) {
			return &auth.AuthResponse{ID: userID}, nil
		},
	}, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Set("user_id", "u1")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
}
