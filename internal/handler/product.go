package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secondhand-market/internal/dto"
	"secondhand-market/internal/metrics"
	"secondhand-market/internal/middleware"
	"secondhand-market/internal/response"
	"secondhand-market/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
	metrics  *metrics.Metrics
}

func NewProductHandler(products *service.ProductService, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{products: products, metrics: m}
}

type ProductRequest struct {
	Title         string            `json:"title" binding:"required"`
	Contents      string            `json:"contents"`
	Price         int64             `json:"price" binding:"gte=0"`
	DeliveryPrice int64             `json:"deliveryPrice" binding:"gte=0"`
	Status        dto.ProductStatus `json:"status"`
	IsTrade       bool              `json:"isTrade"`
	CategoryID    int               `json:"categoryId" binding:"required,gt=0"`
	FileID        *int64            `json:"fileId"`
}

// ProductPatchRequest holds the fields of a partial update; absent fields
// are left unchanged.
type ProductPatchRequest struct {
	Title         *string            `json:"title"`
	Contents      *string            `json:"contents"`
	Price         *int64             `json:"price" binding:"omitempty,gte=0"`
	DeliveryPrice *int64             `json:"deliveryPrice" binding:"omitempty,gte=0"`
	Status        *dto.ProductStatus `json:"status"`
	IsTrade       *bool              `json:"isTrade"`
	DibCount      *int               `json:"dibCount" binding:"omitempty,gte=0"`
	CategoryID    *int               `json:"categoryId" binding:"omitempty,gt=0"`
	FileID        *int64             `json:"fileId"`
}

// ProductDeleteRequest is accepted for compatibility; the product id comes
// from the path and the owner from the session.
type ProductDeleteRequest struct {
	ID        int64  `json:"id"`
	AccountID string `json:"accountId"`
}

// RegisterProduct godoc
// @Summary      Register a product for sale
// @Tags         product
// @Accept       json
// @Param        body  body  ProductRequest  true  "product"
// @Success      201
// @Failure      400  {object}  response.CommonResult
// @Failure      401  {object}  response.CommonResult
// @Failure      404  {object}  response.CommonResult
// @Router       /products [post]
func (h *ProductHandler) RegisterProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p := &dto.ProductDTO{
		Title:         req.Title,
		Contents:      req.Contents,
		Price:         req.Price,
		DeliveryPrice: req.DeliveryPrice,
		Status:        req.Status,
		IsTrade:       req.IsTrade,
		CategoryID:    req.CategoryID,
		FileID:        req.FileID,
	}
	if err := h.products.Register(c.Request.Context(), middleware.AccountID(c), p); err != nil {
		_ = c.Error(err)
		return
	}
	h.metrics.RecordProductRegistered()
	c.Status(http.StatusCreated)
}

// GetMyProducts godoc
// @Summary      List the caller's products
// @Tags         product
// @Produce      json
// @Success      200  {object}  response.ListResult[dto.ProductDTO]
// @Failure      401  {object}  response.CommonResult
// @Router       /products/my-products [get]
func (h *ProductHandler) GetMyProducts(c *gin.Context) {
	list, err := h.products.GetMyProducts(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.List(c, list)
}

// UpdateProducts godoc
// @Summary      Update a product of the caller
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        productId  path      int                  true  "product id"
// @Param        body       body      ProductPatchRequest  true  "fields to change"
// @Success      200        {object}  response.CommonResult
// @Failure      400        {object}  response.CommonResult
// @Failure      401        {object}  response.CommonResult
// @Failure      404        {object}  response.CommonResult
// @Router       /products/{productId} [patch]
func (h *ProductHandler) UpdateProducts(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	var req ProductPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u := dto.ProductUpdate{
		Title:         req.Title,
		Contents:      req.Contents,
		Price:         req.Price,
		DeliveryPrice: req.DeliveryPrice,
		Status:        req.Status,
		IsTrade:       req.IsTrade,
		DibCount:      req.DibCount,
		CategoryID:    req.CategoryID,
		FileID:        req.FileID,
	}
	if err := h.products.UpdateProducts(c.Request.Context(), middleware.AccountID(c), productID, u); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c)
}

// DeleteProduct godoc
// @Summary      Delete a product of the caller
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        productId  path      int                   true   "product id"
// @Param        body       body      ProductDeleteRequest  false  "ignored"
// @Success      200        {object}  response.CommonResult
// @Failure      401        {object}  response.CommonResult
// @Failure      404        {object}  response.CommonResult
// @Router       /products/{productId} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), middleware.AccountID(c), productID); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c)
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         product
// @Produce      json
// @Param        productId  path      int  true  "product id"
// @Success      200        {object}  response.SingleResult[dto.ProductDTO]
// @Failure      404        {object}  response.CommonResult
// @Router       /products/{productId} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	p, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Single(c, p)
}

// SearchProducts godoc
// @Summary      Search products
// @Tags         product
// @Produce      json
// @Param        categoryId         query     int     false  "category id, 0 for all"
// @Param        sortStatus         query     string  false  "CATEGORIES, NEWEST, OLDEST, HIGHPRICE, LOWPRICE or GRADE"
// @Param        searchCount        query     int     false  "page size"  default(20)
// @Param        pagingStartOffset  query     int     false  "offset"     default(0)
// @Success      200                {object}  response.ListResult[dto.ProductDTO]
// @Failure      400                {object}  response.CommonResult
// @Failure      404                {object}  response.CommonResult
// @Router       /products [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var search dto.CategoryDTO
	if err := c.ShouldBindQuery(&search); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.products.SearchProducts(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.List(c, list)
}

// AddDib godoc
// @Summary      Mark interest in a product
// @Tags         product
// @Produce      json
// @Param        productId  path      int  true  "product id"
// @Success      200        {object}  response.CommonResult
// @Failure      401        {object}  response.CommonResult
// @Failure      404        {object}  response.CommonResult
// @Router       /products/{productId}/dibs [post]
func (h *ProductHandler) AddDib(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	if err := h.products.AddDib(c.Request.Context(), productID); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c)
}
