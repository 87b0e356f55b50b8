package server

import (
	"crypto/subtle"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/slzdigital/catalogo/internal/config"
	"github.com/slzdigital/catalogo/internal/ratelimit"
	"go.uber.org/zap"
)

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// AdminRequired gates the admin surface behind a static bearer token. An
// empty configured token leaves the gate open; NewServer already logged the
// warning, so this only happens in development setups.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := s.cfg.AdminAPIToken
		if token == "" {
			c.Next()
			return
		}

		presented := bearerToken(c.GetHeader("Authorization"))
		if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Next()
	}
}

// ReviewRateLimit throttles review submission per client IP. The limiter
// fails open on redis errors so a cache outage never blocks the public site.
func (s *Server) ReviewRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Enabled() {
			c.Next()
			return
		}

		res, err := s.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			s.log.Warn("review rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(ratelimit.RetryAfterSeconds(res.RetryAfter)))
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
