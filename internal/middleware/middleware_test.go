package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/errs"
	"secondhand-market/internal/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.CommonResult {
	t.Helper()
	var out response.CommonResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// sessionEngine has a login route that stores the given user and a gated
// route that echoes the resolved account.
func sessionEngine(required dto.UserType) *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("0123456789abcdef"))))
	r.POST("/login/:type", func(c *gin.Context) {
		user := &dto.UserDTO{ID: "alice", UserType: dto.UserType(c.Param("type"))}
		if err := SaveLogin(c, user); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		_ = ClearLogin(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/gated", LoginCheck(required), func(c *gin.Context) {
		response.Single(c, AccountID(c))
	})
	return r
}

func login(t *testing.T, r *gin.Engine, userType string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/"+userType, nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func getGated(r *gin.Engine, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginCheck(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		w := getGated(sessionEngine(dto.UserTypeUser), nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, errs.CodeUnauthorized, body.Code)
	})

	t.Run("matching type", func(t *testing.T) {
		r := sessionEngine(dto.UserTypeUser)
		w := getGated(r, login(t, r, "USER"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"code":0,"msg":"success","data":"alice"}`, w.Body.String())
	})

	t.Run("other type", func(t *testing.T) {
		r := sessionEngine(dto.UserTypeAdmin)
		w := getGated(r, login(t, r, "USER"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("after logout", func(t *testing.T) {
		r := sessionEngine(dto.UserTypeUser)
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		for _, ck := range login(t, r, "USER") {
			req.AddCookie(ck)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)

		assert.Equal(t, http.StatusUnauthorized, getGated(r, w.Result().Cookies()).Code)
	})
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"typed", errs.ErrProductNotFound, http.StatusNotFound, errs.CodeProductNotFound},
		{"wrapped typed", errors.Wrap(errs.ErrUserNotFound, "lookup"), http.StatusNotFound, errs.CodeUserNotFound},
		{"duplicate key", errors.Wrap(gorm.ErrDuplicatedKey, "insert"), http.StatusConflict, errs.CodeConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, errs.CodeBadRequest},
		{"bind", &gin.Error{Err: errors.New("bad json"), Type: gin.ErrorTypeBind}, http.StatusBadRequest, errs.CodeBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, errs.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestErrorAdvice(t *testing.T) {
	r := gin.New()
	r.Use(ErrorAdvice())
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errs.ErrCategoryNotFound)
	})
	r.GET("/bind", func(c *gin.Context) {
		_ = c.Error(errors.New("name is required")).SetType(gin.ErrorTypeBind)
	})
	r.GET("/written", func(c *gin.Context) {
		response.Success(c)
		_ = c.Error(errors.New("late failure"))
	})

	t.Run("typed error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode(t, w)
		assert.Equal(t, errs.CodeCategoryNotFound, body.Code)
		assert.Equal(t, errs.ErrCategoryNotFound.Message, body.Msg)
	})

	t.Run("bind error keeps message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bind", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name is required", decode(t, w).Msg)
	})

	t.Run("response already written", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode(t, w).Success)
	})
}

func TestRecover(t *testing.T) {
	r := gin.New()
	r.Use(Recover())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errs.CodeInternal, decode(t, w).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(1, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0, 0))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestIPRateLimiterSweepsIdleBuckets(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(60, 1)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	l.getLimiter("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Minute)
	l.getLimiter("10.0.0.2")

	assert.NotContains(t, l.limiters, "10.0.0.1")
	assert.Contains(t, l.limiters, "10.0.0.2")
}
