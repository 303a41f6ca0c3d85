package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"leadgate/internal/domain/business"
	"leadgate/internal/handler/httperr"
	"leadgate/internal/pkg/cookie"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxBusinessIDKey   = "business_id"
	ctxBusinessRoleKey = "business_role"
)

var roleHierarchy = map[business.Role]int{
	business.RoleMember: 1,
	business.RoleAdmin:  2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing access token"), "Access token required", nil)
			return
		}

		businessID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxBusinessIDKey, businessID)
		c.Set(ctxBusinessRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"business_id": businessID.String(),
			"role":        string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(role, minRole business.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole business.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetBusinessRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.New("insufficient role"), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	businessID, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := businessID.(uuid.UUID)
	return id, ok
}

func GetBusinessRole(c *gin.Context) (business.Role, bool) {
	businessRole, exists := c.Get(ctxBusinessRoleKey)
	if !exists {
		return "", false
	}

	role, ok := businessRole.(business.Role)
	return role, ok
}
