package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
	"secondhand-market/internal/response"
)

const (
	sessionAccountKey  = "account_id"
	sessionUserTypeKey = "user_type"
)

// LoginCheck lets the request through only when the session carries a
// login of the required type; the handler then reads the account with
// AccountID. Rejected requests never reach the handler.
func LoginCheck(required dto.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		accountID, _ := sess.Get(sessionAccountKey).(string)
		userType, _ := sess.Get(sessionUserTypeKey).(string)

		if accountID == "" || dto.UserType(userType) != required {
			response.Fail(c, errs.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

// SaveLogin records user as the session's login.
func SaveLogin(c *gin.Context, user *dto.UserDTO) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(sessionAccountKey, user.ID)
	sess.Set(sessionUserTypeKey, string(user.UserType))
	return sess.Save()
}

func ClearLogin(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
