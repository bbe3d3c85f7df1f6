package extensions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Kotlang/opsGo/logger"
	"go.uber.org/zap"
)

// CloudinaryClient uploads dashboard media through Cloudinary's unsigned
// upload endpoint. Images go to the image resource, everything else to raw.
type CloudinaryClient struct {
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
	baseUrl      string
}

func NewCloudinaryClient(cloudName, uploadPreset string) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		baseUrl:      "https://api.cloudinary.com/v1_1",
	}
}

type uploadResponse struct {
	SecureUrl string `json:"secure_url"`
	PublicId  string `json:"public_id"`
}

// Upload streams the file to the media host and returns the hosted URL.
func (c *CloudinaryClient) Upload(ctx context.Context, fileName, contentType string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	uploadUrl := fmt.Sprintf("%s/%s/%s/upload", c.baseUrl, c.cloudName, resourceType(contentType))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadUrl, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Error uploading media", zap.String("fileName", fileName), zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Media host rejected upload", zap.Int("status", resp.StatusCode), zap.String("body", string(raw)))
		return "", fmt.Errorf("media upload failed with status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	return parsed.SecureUrl, nil
}

// resourceType picks the Cloudinary resource for the file: image for image/*
// content types, raw for everything else.
func resourceType(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}
