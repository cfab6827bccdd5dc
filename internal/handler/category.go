package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secondhand-market/internal/response"
	"secondhand-market/internal/service"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// GetCategories godoc
// @Summary      List categories
// @Tags         category
// @Produce      json
// @Success      200  {object}  response.ListResult[dto.CategoryDTO]
// @Router       /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	list, err := h.categories.GetCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.List(c, list)
}

// RegisterCategory godoc
// @Summary      Create a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Param        body  body      CategoryRequest  true  "category"
// @Success      201   {object}  response.SingleResult[dto.CategoryDTO]
// @Failure      400   {object}  response.CommonResult
// @Failure      401   {object}  response.CommonResult
// @Failure      409   {object}  response.CommonResult
// @Router       /categories [post]
func (h *CategoryHandler) RegisterCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categories.Register(c.Request.Context(), req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SingleWithStatus(c, http.StatusCreated, category)
}
