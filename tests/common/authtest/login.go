//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"leadgate/internal/handler/dto/request"
	"leadgate/internal/pkg/cookie"
	"leadgate/tests/common/dbtest"
	"leadgate/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginBusiness(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role, category, zipcode string) string {
	t.Helper()
	dbtest.CreateTestBusiness(t, db, email, role, category, zipcode)
	return LoginBusiness(t, router, email, "password123")
}
