package helpers

import (
	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/storage"
)

// UploadFile stores the multipart field "image" and returns its public URL.
func UploadFile(c *gin.Context, store storage.BlobStore, collection, nameHint string) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", apperror.Validation("image", "No file was submitted.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return store.Save(c.Request.Context(), collection, nameHint, storage.Blob{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     src,
	})
}
