package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() (*gin.Engine, *JWTService) {
	gin.SetMode(gin.TestMode)
	gate := NewGate("@50&Grace", "", []string{"OBELE50", "GRACE50", "FAMILY"})
	jwtSvc := NewJWTService("test-secret", 24)
	h := NewHandler(gate, jwtSvc, nil)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/access/validate", h.ValidateGuestCode)
	return r, jwtSvc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesValidToken(t *testing.T) {
	r, jwtSvc := newAuthRouter()

	w := postJSON(r, "/auth/login", `{"access_code":"@50&Grace"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	claims, err := jwtSvc.Validate(body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLoginRejectsWrongCode(t *testing.T) {
	r, _ := newAuthRouter()
	w := postJSON(r, "/auth/login", `{"access_code":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginRequiresAccessCode(t *testing.T) {
	r, _ := newAuthRouter()
	w := postJSON(r, "/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateGuestCode(t *testing.T) {
	r, _ := newAuthRouter()

	w := postJSON(r, "/access/validate", `{"code":"obele50"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = postJSON(r, "/access/validate", `{"code":"nope"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}
