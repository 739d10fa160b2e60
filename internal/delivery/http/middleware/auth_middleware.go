package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-gladiator-backend/config"
	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/auth"
	"go-gladiator-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func parseToken(tokenString string, jwksProvider *auth.Provider, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			// HS256 - Supabase legacy secret
			if cfg.SupabaseJWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			// RS256 - use JWKS
			return jwksProvider.KeyFunc(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// setIdentity resolves the caller's role from the profiles table and stores
// identity on the gin context. The JWT role claim is never trusted: it only
// says "authenticated", not which marketplace role the user has.
func setIdentity(c *gin.Context, claims jwt.MapClaims, profileRepo domain.ProfileRepository) {
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	role := ""
	profile, err := profileRepo.GetByID(c.Request.Context(), sub)
	switch {
	case err == nil:
		role = profile.UserType
	case errors.Is(err, domain.ErrNotFound):
		// Valid token but no profile row yet: the user registered with the
		// auth provider and has not synced a profile. Role stays empty so
		// role-gated usecases reject until /profiles/sync is called.
	default:
		logger.Log.Warn("Failed to load profile for authenticated user", "user_id", sub, "error", err)
	}

	c.Set(string(domain.KeyUserID), sub)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(string(domain.KeyUserRole), role)

	// Usecases read the typed keys through context.Context, so they must live
	// on the request context too; gin only resolves string keys itself.
	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	c.Request = c.Request.WithContext(ctx)
}

// AuthMiddleware requires a valid Supabase JWT.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, profileRepo domain.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString, jwksProvider, cfg)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		setIdentity(c, claims, profileRepo)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present but lets
// anonymous requests through. Used for endpoints like feedback that accept
// both.
func OptionalAuth(jwksProvider *auth.Provider, cfg *config.Config, profileRepo domain.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString != "" {
			if claims, err := parseToken(tokenString, jwksProvider, cfg); err == nil {
				setIdentity(c, claims, profileRepo)
			}
		}
		c.Next()
	}
}
