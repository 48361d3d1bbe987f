package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rovyapp/rovy-backend/internal/infrastructure/supabase"
)

// tokenCacheTTL bounds how long a revoked token keeps working.
const tokenCacheTTL = 5 * time.Minute

const tokenCachePrefix = "auth:token:"

type AuthMiddleware struct {
	verifier *supabase.Client
	redis    *redis.Client
	logger   zerolog.Logger
}

func NewAuthMiddleware(verifier *supabase.Client, redisClient *redis.Client, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		redis:    redisClient,
		logger:   logger,
	}
}

// RequireAuth resolves the bearer token to a user id and stores it in the
// context under "user_id". Verified tokens are cached in redis so repeat
// requests skip the provider round trip.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header",
			})
			return
		}

		ctx := c.Request.Context()
		cacheKey := tokenCachePrefix + token

		if m.redis != nil {
			if userID, err := m.redis.Get(ctx, cacheKey).Result(); err == nil && userID != "" {
				c.Set("user_id", userID)
				c.Next()
				return
			}
		}

		authUser, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		if m.redis != nil {
			if err := m.redis.Set(ctx, cacheKey, authUser.ID, tokenCacheTTL).Err(); err != nil {
				m.logger.Warn().Err(err).Msg("failed to cache auth token")
			}
		}

		c.Set("user_id", authUser.ID)
		c.Next()
	}
}
