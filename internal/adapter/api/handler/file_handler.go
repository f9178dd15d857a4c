package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"furnimarket/internal/domain/service"
	"furnimarket/pkg/errors"
	"furnimarket/pkg/logger"
	"furnimarket/pkg/response"
)

// FileHandler accepts listing photos and hands back the public URL. The URL
// goes into the listing payload as a regular image entry afterwards.
type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

var fileHandler *FileHandler

func NewFileHandler(fileService service.FileUploadService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func SetupFileHandler(fileService service.FileUploadService) {
	fileHandler = NewFileHandler(fileService)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) UploadListingImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG and WebP images are allowed", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Could not read uploaded file", err))
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, "listings", true)
	if err != nil {
		logger.Error("Listing image upload failed: %v", err)
		return response.Error(c, errors.Internal("Upload failed", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

func (h *FileHandler) DeleteListingImage(c echo.Context) error {
	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, errors.Internal("Delete failed", err))
	}

	return response.Success(c, map[string]string{
		"message": "File deleted successfully",
	})
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
