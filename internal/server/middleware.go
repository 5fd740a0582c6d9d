package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Paths that are never logged.
var quietPrefixes = []string{"/static/", "/favicon", "/healthz"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashClient returns a salted, truncated digest of ip. It is stable for one
// process and never the raw address.
func hashClient(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func quiet(path string) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// requestLogger logs one line per page request. With trustDNT, a request
// carrying DNT: 1 is logged without the client hash.
func requestLogger(log *zap.Logger, salt string, trustDNT bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		if quiet(path) {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		}
		if !(trustDNT && c.GetHeader("DNT") == "1") {
			fields = append(fields,
				zap.String("client", hashClient(c.ClientIP(), salt)),
				zap.String("user_agent", c.Request.UserAgent()),
			)
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("Request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("Request", fields...)
		default:
			log.Info("Request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("Panic recovered", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
