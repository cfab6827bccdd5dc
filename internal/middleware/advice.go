package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"secondhand-market/internal/errs"
	"secondhand-market/internal/response"
)

// ErrorAdvice renders the last error a handler attached with c.Error as a
// failure envelope. Handlers that already wrote a response are left alone.
func ErrorAdvice() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		e := Translate(last)
		if e.Status >= 500 {
			Logger(c).Error().Err(last.Err).Int("code", e.Code).Msg("request failed")
		}
		if !c.Writer.Written() {
			response.Fail(c, e)
		}
	}
}

// Translate maps any error to the typed error it is reported as.
func Translate(err error) *errs.Error {
	var ginErr *gin.Error
	if errors.As(err, &ginErr) {
		if ginErr.IsType(gin.ErrorTypeBind) {
			return errs.BadRequest(ginErr.Err.Error())
		}
		err = ginErr.Err
	}

	var typed *errs.Error
	switch {
	case errors.As(err, &typed):
		return typed
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.BadRequest("referenced resource does not exist")
	default:
		return errs.ErrInternal
	}
}

// Recover turns a panic into the internal error envelope.
func Recover() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		Logger(c).Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		response.Fail(c, errs.ErrInternal)
		c.Abort()
	})
}
