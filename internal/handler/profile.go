package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/response"
	"secondhand-market/internal/service"
)

type ProfileHandler struct {
	users *service.UserService
}

func NewProfileHandler(users *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// profileForm is read from the query string or a urlencoded/multipart body.
// The password length is checked in bytes by the user service.
type profileForm struct {
	Password string `form:"pw" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Address  string `form:"address" binding:"required"`
}

func (f profileForm) toDTO(id string) *dto.UserDTO {
	return &dto.UserDTO{
		ID:       id,
		Password: f.Password,
		Name:     f.Name,
		Phone:    f.Phone,
		Address:  f.Address,
	}
}

type userMessageQuery struct {
	Lang string `form:"lang" binding:"required"`
}

// GetUserProfile godoc
// @Summary      Get a user profile
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "account id"
// @Success      200  {object}  response.SingleResult[dto.UserDTO]
// @Failure      404  {object}  response.CommonResult
// @Router       /user/{id} [get]
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	user, err := h.users.GetUserInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, user)
}

// GetUserMessage looks the user up by msrl; lang is required but does not
// affect the result.
// @Summary      Get a user profile by key
// @Tags         user
// @Produce      json
// @Param        msrl  path      string  true  "account id"
// @Param        lang  query     string  true  "language"
// @Success      200   {object}  response.SingleResult[dto.UserDTO]
// @Failure      400   {object}  response.CommonResult
// @Failure      404   {object}  response.CommonResult
// @Router       /usermsg/{msrl} [get]
func (h *ProfileHandler) GetUserMessage(c *gin.Context) {
	var q userMessageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.users.GetUserInfo(c.Request.Context(), c.Param("msrl"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, user)
}

// UpdateUserProfile godoc
// @Summary      Update a user profile
// @Tags         user
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id       path      string  true  "account id"
// @Param        pw       formData  string  true  "password"
// @Param        name     formData  string  true  "name"
// @Param        phone    formData  string  true  "phone"
// @Param        address  formData  string  true  "address"
// @Success      200      {object}  response.SingleResult[int64]
// @Failure      400      {object}  response.CommonResult
// @Router       /user/{id} [put]
func (h *ProfileHandler) UpdateUserProfile(c *gin.Context) {
	id, ok := accountIDParam(c, "id")
	if !ok {
		return
	}
	var f profileForm
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		bindError(c, err)
		return
	}

	n, err := h.users.UpdateUserProfile(c.Request.Context(), f.toDTO(id))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, n)
}

// InsertUserProfile godoc
// @Summary      Register a user
// @Tags         user
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id       path      string  true  "account id"
// @Param        pw       formData  string  true  "password"
// @Param        name     formData  string  true  "name"
// @Param        phone    formData  string  true  "phone"
// @Param        address  formData  string  true  "address"
// @Success      200      {object}  response.SingleResult[int64]
// @Failure      400      {object}  response.CommonResult
// @Failure      409      {object}  response.CommonResult
// @Router       /user/{id} [post]
func (h *ProfileHandler) InsertUserProfile(c *gin.Context) {
	id, ok := accountIDParam(c, "id")
	if !ok {
		return
	}
	var f profileForm
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		bindError(c, err)
		return
	}

	n, err := h.users.InsertUserProfile(c.Request.Context(), f.toDTO(id))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, n)
}

// DeleteUserProfile godoc
// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "account id"
// @Success      200  {object}  response.CommonResult
// @Router       /user/{id} [delete]
func (h *ProfileHandler) DeleteUserProfile(c *gin.Context) {
	if err := h.users.DeleteUserProfile(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c)
}
