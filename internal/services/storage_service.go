package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// StorageService uploads images to the hosted object storage API. When the
// configured bucket does not exist it falls back to returning the file as a
// base64 data URL so the image can be embedded directly in the record.
type StorageService struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

// NewStorageService creates a StorageService for the given storage endpoint.
func NewStorageService(baseURL, apiKey, bucket string) *StorageService {
	return &StorageService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ObjectPath builds a bucket key for an upload: a per-entity folder plus a
// timestamped file name so keys stay unique.
func ObjectPath(folder, fileName string) string {
	return fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), fileName)
}

// Upload stores the object and returns its public URL. On a missing-bucket
// failure it returns a data URL instead.
func (s *StorageService) Upload(objectPath string, data []byte, contentType string) (string, error) {
	if s.baseURL == "" {
		log.Println("[Storage] endpoint not configured, embedding file as data URL")
		return dataURL(data, contentType), nil
	}

	url := fmt.Sprintf("%s/object/%s/%s", s.baseURL, s.bucket, objectPath)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=3600")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return s.PublicURL(objectPath), nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode == http.StatusNotFound && strings.Contains(strings.ToLower(string(body)), "bucket not found") {
		log.Printf("[Storage] bucket %q not found, embedding file as data URL", s.bucket)
		return dataURL(data, contentType), nil
	}

	return "", fmt.Errorf("storage returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// PublicURL returns the public address of a stored object.
func (s *StorageService) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}

func dataURL(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
