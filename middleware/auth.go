package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

// Context keys set by ValidateToken.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// ValidateToken parses the Bearer token, loads the user and stores the
// user id and role in the request context. The user is reloaded on every
// request so a role change takes effect without reissuing the token.
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperrors.ErrUnauthorized.Error()})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user's role is one
// of the given roles. Must run after ValidateToken.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			c.Abort()
			return
		}
		if _, ok := allowed[roleVal.(models.Role)]; !ok {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}
