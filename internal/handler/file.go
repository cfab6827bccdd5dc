package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secondhand-market/internal/metrics"
	"secondhand-market/internal/middleware"
	"secondhand-market/internal/response"
	"secondhand-market/internal/service"
)

type FileHandler struct {
	files   *service.FileService
	metrics *metrics.Metrics
}

func NewFileHandler(files *service.FileService, m *metrics.Metrics) *FileHandler {
	return &FileHandler{files: files, metrics: m}
}

// Upload godoc
// @Summary      Upload a product image
// @Tags         file
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "jpg, jpeg, png or webp image"
// @Success      201   {object}  response.SingleResult[dto.FileDTO]
// @Failure      400   {object}  response.CommonResult
// @Failure      401   {object}  response.CommonResult
// @Router       /files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		bindError(c, err)
		return
	}

	f, err := h.files.Upload(c.Request.Context(), middleware.AccountID(c), header)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.metrics.RecordUpload()
	response.SingleWithStatus(c, http.StatusCreated, f)
}
