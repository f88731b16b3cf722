package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-service/internal/auth"
	"dashboard-service/internal/model"
)

func TestBearerToken(t *testing.T) {
	_, err := bearerToken("")
	assert.ErrorIs(t, err, errMissingHeader)

	for _, raw := range []string{"Bearer", "Basic abc", "Bearer   "} {
		_, err := bearerToken(raw)
		assert.ErrorIs(t, err, errMalformed, raw)
	}

	token, err := bearerToken("bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)
}

func TestAuthSetsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	parser := auth.NewParser("secret")
	userID := uuid.New()
	token, err := parser.Sign(auth.Claims{UserID: userID, Role: "Viewer"})
	require.NoError(t, err)

	var got model.Principal
	r := gin.New()
	r.GET("/x", Auth(parser), func(c *gin.Context) {
		got, _ = MustPrincipal(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, model.RoleViewer, got.Role)
	assert.Equal(t, token, got.Token)
	assert.True(t, got.IsViewer())
}

func TestAuthRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Auth(auth.NewParser("secret")), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
