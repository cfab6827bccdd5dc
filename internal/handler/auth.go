package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"secondhand-market/internal/errs"
	"secondhand-market/internal/metrics"
	"secondhand-market/internal/middleware"
	"secondhand-market/internal/response"
	"secondhand-market/internal/service"
)

type AuthHandler struct {
	users   *service.UserService
	metrics *metrics.Metrics
}

func NewAuthHandler(users *service.UserService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{users: users, metrics: m}
}

type LoginRequest struct {
	AccountID string `json:"accountId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "credentials"
// @Success      200   {object}  response.SingleResult[dto.UserDTO]
// @Failure      400   {object}  response.CommonResult
// @Failure      401   {object}  response.CommonResult
// @Failure      429   {object}  response.CommonResult
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.AccountID, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			h.metrics.RecordLogin(false)
		}
		_ = c.Error(err)
		return
	}
	if err := middleware.SaveLogin(c, user); err != nil {
		_ = c.Error(errors.Wrap(err, "save session"))
		return
	}
	h.metrics.RecordLogin(true)
	response.Single(c, user)
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.CommonResult
// @Router       /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearLogin(c); err != nil {
		_ = c.Error(errors.Wrap(err, "clear session"))
		return
	}
	response.Success(c)
}

// MyInfo godoc
// @Summary      Get the caller's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SingleResult[dto.UserDTO]
// @Failure      401  {object}  response.CommonResult
// @Router       /users/my-info [get]
func (h *AuthHandler) MyInfo(c *gin.Context) {
	user, err := h.users.GetUserInfo(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, user)
}
