package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := Identity(c)
		c.JSON(http.StatusOK, gin.H{"staffId": identity.StaffID, "role": identity.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := protectedRouter()

	t.Run("valid token passes and exposes the identity", func(t *testing.T) {
		token, exp, err := NewAccessToken(testSecret, 7, 1, "receptionist", 60)
		require.NoError(t, err)
		assert.False(t, exp.IsZero())

		w := request(t, r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"staffId":7`)
		assert.Contains(t, w.Body.String(), `"role":"receptionist"`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := request(t, r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		token, _, err := NewAccessToken("other-secret", 7, 1, "receptionist", 60)
		require.NoError(t, err)

		w := request(t, r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, _, err := NewAccessToken(testSecret, 7, 1, "receptionist", -5)
		require.NoError(t, err)

		w := request(t, r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := request(t, r, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(RequireRole("admin", "manager"))

	t.Run("allowed role passes", func(t *testing.T) {
		token, _, err := NewAccessToken(testSecret, 1, 1, "manager", 60)
		require.NoError(t, err)

		w := request(t, r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		token, _, err := NewAccessToken(testSecret, 2, 1, "receptionist", 60)
		require.NoError(t, err)

		w := request(t, r, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
