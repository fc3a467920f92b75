package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/models"
)

// AuthClaimsKey is the key used to store JWT claims in gin context
const AuthClaimsKey = "auth_claims"

// TokenFromRequest returns the session token of a request. A Bearer
// Authorization header wins over the legacy "token" header and query parameter.
func TokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if token := c.GetHeader("token"); token != "" {
		return token
	}
	return c.Query("token")
}

// RequireRole creates a middleware that only lets through tokens of the given role
func RequireRole(jwtService *JWTService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{
				Success: false,
				Message: "Not authorized, Login Again",
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		if role != "" && claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, models.MessageResponse{
				Success: false,
				Message: "Not authorized for this resource",
			})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present and
// lets the request continue either way
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := TokenFromRequest(c); tokenString != "" {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

// SubjectID returns the authenticated company or user ID, or "" if unauthenticated
func SubjectID(c *gin.Context) string {
	if claims := GetAuthClaims(c); claims != nil {
		return claims.Subject
	}
	return ""
}
