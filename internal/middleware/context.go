// Package middleware holds the gin middleware of the API: request
// correlation and logging, the login check gate, rate limiting and the
// error advice that renders failures as envelopes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	accountIDKey = "accountId"
	requestIDKey = "requestId"
	loggerKey    = "logger"
)

// AccountID is the account resolved by LoginCheck, or "" on ungated routes.
func AccountID(c *gin.Context) string {
	return c.GetString(accountIDKey)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger returns the request-scoped logger set by RequestLogger, falling
// back to the global zerolog logger.
func Logger(c *gin.Context) *zerolog.Logger {
	if l, ok := c.Get(loggerKey); ok {
		if logger, ok := l.(*zerolog.Logger); ok {
			return logger
		}
	}
	return &log.Logger
}
