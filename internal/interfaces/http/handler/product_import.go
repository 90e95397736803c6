package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopsync/backend/internal/interfaces/http/dto"
)

// maxImportFileSize caps uploaded workbooks at 10MB.
const maxImportFileSize = 10 << 20

// ProductImporter turns an uploaded workbook into queued catalog submissions.
type ProductImporter interface {
	CreateProducts(ctx context.Context, data []byte) (bool, error)
}

// ProductImportHandler handles bulk product import uploads
type ProductImportHandler struct {
	BaseHandler
	importer ProductImporter
}

// NewProductImportHandler creates a new ProductImportHandler
func NewProductImportHandler(importer ProductImporter) *ProductImportHandler {
	return &ProductImportHandler{importer: importer}
}

// RegisterRoutes registers the import routes on the given group
func (h *ProductImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products/import", h.CreateProducts)
}

// CreateProducts accepts a multipart XLSX upload, aggregates its rows into
// products and queues them for rate-limited submission to the external
// catalog. It responds once the products are queued, not once they have been
// submitted externally.
func (h *ProductImportHandler) CreateProducts(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" &&
		contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" &&
		contentType != "application/vnd.ms-excel" &&
		contentType != "application/octet-stream" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be an XLSX workbook")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize))
	if err != nil {
		h.InternalError(c, "failed to read upload: "+err.Error())
		return
	}

	queued, err := h.importer.CreateProducts(c.Request.Context(), data)
	if err != nil {
		h.BadRequest(c, "failed to decode workbook: "+err.Error())
		return
	}

	h.Success(c, queued)
}
