package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/response"
	"github.com/rakandev/portfolio-cms/pkg/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type UploadHandler struct {
	storage storage.ImageStorage
}

func NewUploadHandler(storage storage.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload accepts a multipart "file" field plus an optional "folder" and
// returns the hosted URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		response.Error(c, fmt.Errorf("%w: image storage is not configured", apperror.ErrInternal))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, fmt.Errorf("%w: file is required", apperror.ErrInvalidInput))
		return
	}

	if fileHeader.Size > maxUploadSize {
		response.Error(c, fmt.Errorf("%w: file exceeds 10MB", apperror.ErrInvalidInput))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		response.Error(c, fmt.Errorf("%w: unsupported file type", apperror.ErrInvalidInput))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")

	url, err := h.storage.UploadImage(c.Request.Context(), file, folder, fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"url": url})
}

// Delete removes a previously uploaded image by its URL.
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.storage == nil {
		response.Error(c, fmt.Errorf("%w: image storage is not configured", apperror.ErrInternal))
		return
	}

	var req struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: url is required", apperror.ErrInvalidInput))
		return
	}

	if err := h.storage.DeleteImage(c.Request.Context(), req.URL); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "image deleted successfully")
}
