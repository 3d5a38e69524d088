package controller

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"procurement-portal/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type fileRoutesHandler struct {
	uploadsDir string
	logger     *zap.Logger
}

func newFileRoutesHandler(outer *echo.Group, g *guard, cfg *config.Config, logger *zap.Logger) *fileRoutesHandler {
	h := &fileRoutesHandler{uploadsDir: cfg.UploadsDir, logger: logger}
	outer.POST("/upload", h.Upload, g.requireSession)

	return h
}

// /upload
// Uploaded blobs are stored under a random name; the caller keeps only the
// returned filename as a reference.
func (h *fileRoutesHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"No file found in payload"}); e != nil {
			return e
		}

		return err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.uploadFailed(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return h.uploadFailed(c, err)
	}

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.uploadsDir, filename))
	if err != nil {
		return h.uploadFailed(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return h.uploadFailed(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"file": filename})
}

func (h *fileRoutesHandler) uploadFailed(c echo.Context, err error) error {
	h.logger.Error("file upload failed", zap.Error(err))
	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"}); e != nil {
		return e
	}

	return err
}
