package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImporter struct {
	data []byte
	err  error
}

func (f *fakeImporter) CreateProducts(_ context.Context, data []byte) (bool, error) {
	f.data = data
	if f.err != nil {
		return false, f.err
	}
	return true, nil
}

func newImportEngine(importer ProductImporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewProductImportHandler(importer).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

// uploadRequest builds a multipart request. An empty contentType falls back
// to CreateFormFile's application/octet-stream.
func uploadRequest(t *testing.T, content []byte, contentType string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	var part io.Writer
	var err error
	if contentType == "" {
		part, err = w.CreateFormFile("file", "products.xlsx")
	} else {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, "products.xlsx"))
		header.Set("Content-Type", contentType)
		part, err = w.CreatePart(header)
	}
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestProductImportHandler_CreateProducts(t *testing.T) {
	t.Run("queues the upload and reports success", func(t *testing.T) {
		importer := &fakeImporter{}
		engine := newImportEngine(importer)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, uploadRequest(t, []byte("workbook-bytes"), ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":true}`, rec.Body.String())
		assert.Equal(t, []byte("workbook-bytes"), importer.data)
	})

	t.Run("accepts the xlsx content type", func(t *testing.T) {
		importer := &fakeImporter{}
		engine := newImportEngine(importer)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, uploadRequest(t, []byte("workbook-bytes"),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects requests without a file", func(t *testing.T) {
		engine := newImportEngine(&fakeImporter{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", nil)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects non-spreadsheet content types", func(t *testing.T) {
		engine := newImportEngine(&fakeImporter{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, uploadRequest(t, []byte("<html>"), "text/html"))

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("maps decode failures to bad request", func(t *testing.T) {
		importer := &fakeImporter{err: errors.New("not a workbook")}
		engine := newImportEngine(importer)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, uploadRequest(t, []byte("garbage"), ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not a workbook")
	})
}
