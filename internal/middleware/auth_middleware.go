package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-viagens/internal/auth/errors"
	"go-viagens/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxEmployeeID   = "id_empregado"
	CtxRoleID       = "id_cargo"
	CtxEmployeeName = "nome_empregado"
	CtxEmail        = "email"
)

// AuthMiddleware accepts the JWT from the Authorization header or from the
// legacy "token" cookie and exposes the principal on the gin context. The
// embedded role id is informational only; authoritative role checks re-read
// the employee row (see rbac.Service).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["idEmpregado"].(float64)
		if !ok || employeeID <= 0 {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee id not found in token", nil)
			c.Abort()
			return
		}

		roleID, _ := claims["idCargo"].(float64)
		name, _ := claims["nomeEmpregado"].(string)
		email, _ := claims["email"].(string)

		c.Set(CtxEmployeeID, int64(employeeID))
		c.Set(CtxRoleID, int64(roleID))
		c.Set(CtxEmployeeName, name)
		c.Set(CtxEmail, email)

		c.Next()
	}
}
