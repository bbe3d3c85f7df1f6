package service

import (
	"net/http"

	"github.com/Kotlang/opsGo/extensions"
	"github.com/Kotlang/opsGo/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MediaService struct {
	uploader *extensions.CloudinaryClient
}

func ProvideMediaService(uploader *extensions.CloudinaryClient) *MediaService {
	return &MediaService{uploader: uploader}
}

// Admin only API. Streams a multipart file to the media host and returns the
// hosted URL.
func (s *MediaService) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A file is required."})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Could not read the uploaded file."})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	hostedUrl, err := s.uploader.Upload(c.Request().Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		logger.Error("Error uploading media", zap.String("fileName", fileHeader.Filename), zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Media upload failed."})
	}

	return c.JSON(http.StatusCreated, map[string]string{"url": hostedUrl})
}
