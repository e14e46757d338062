package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/apperror"
)

const imageField = "image"

// BlobStore persists uploaded images and returns their public URL.
type BlobStore interface {
	Save(ctx context.Context, collection, nameHint string, blob Blob) (string, error)
}

type Blob struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type UploadConfig struct {
	MaxSizeBytes     int64
	AllowedMimeTypes []string
	UploadBasePath   string
	MediaURL         string
}

var DefaultImageUploadConfig = UploadConfig{
	MaxSizeBytes: 5 * 1024 * 1024, // 5MB
	AllowedMimeTypes: []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	},
	UploadBasePath: "./uploads/",
	MediaURL:       "/uploads",
}

type LocalStore struct {
	config UploadConfig
}

var _ BlobStore = (*LocalStore)(nil)

func NewLocalStore(config UploadConfig) *LocalStore {
	if config.MaxSizeBytes <= 0 {
		config.MaxSizeBytes = DefaultImageUploadConfig.MaxSizeBytes
	}
	if len(config.AllowedMimeTypes) == 0 {
		config.AllowedMimeTypes = DefaultImageUploadConfig.AllowedMimeTypes
	}
	if config.UploadBasePath == "" {
		config.UploadBasePath = DefaultImageUploadConfig.UploadBasePath
	}
	if config.MediaURL == "" {
		config.MediaURL = DefaultImageUploadConfig.MediaURL
	}
	return &LocalStore{config: config}
}

func (s *LocalStore) Save(ctx context.Context, collection, nameHint string, blob Blob) (string, error) {
	if blob.Size > s.config.MaxSizeBytes {
		return "", apperror.Validation(imageField,
			fmt.Sprintf("File size exceeds maximum limit of %d MB.", s.config.MaxSizeBytes/(1024*1024)))
	}

	buffer := make([]byte, 512)
	n, err := io.ReadFull(blob.Body, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			return "", apperror.Validation(imageField, "The submitted file is empty.")
		}
		return "", fmt.Errorf("read upload: %w", err)
	}
	buffer = buffer[:n]

	mimeType := http.DetectContentType(buffer)
	if !s.allowed(mimeType) {
		return "", apperror.Validation(imageField,
			fmt.Sprintf("Invalid file type. Allowed types: %s.", strings.Join(s.config.AllowedMimeTypes, ", ")))
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	uploadPath := filepath.Join(s.config.UploadBasePath, collection)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s%s", Slugify(nameHint), uuid.New().String(), mimeExtensions[mimeType])
	fullFilepath := filepath.Join(uploadPath, filename)

	dst, err := os.Create(fullFilepath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.MultiReader(bytes.NewReader(buffer), blob.Body)); err != nil {
		os.Remove(fullFilepath)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path.Join(s.config.MediaURL, collection, filename), nil
}

func (s *LocalStore) allowed(mimeType string) bool {
	for _, allowedType := range s.config.AllowedMimeTypes {
		if mimeType == allowedType {
			return true
		}
	}
	return false
}

// mimeExtensions names stored files by their sniffed type so the static file
// server never picks a content type from the client's filename.
var mimeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of other characters into a dash.
func Slugify(s string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return "image"
	}
	return slug
}
