package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/airport-service/internal/apperror"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestSlugify(t *testing.T) {
	testCases := map[string]string{
		"Boryspil International": "boryspil-international",
		"  Boeing 737-800 ":      "boeing-737-800",
		"Ä!!":                    "image",
		"":                       "image",
	}
	for in, want := range testCases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(UploadConfig{UploadBasePath: dir, MediaURL: "/media"})
	body := pngBytes(t)

	url, err := store.Save(context.Background(), "airports", "Boryspil International", Blob{
		Filename: "photo.PNG",
		Size:     int64(len(body)),
		Body:     bytes.NewReader(body),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/airports/boryspil-international-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	stored, err := os.ReadFile(filepath.Join(dir, "airports", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, body, stored)
}

func TestLocalStore_IgnoresClientExtension(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(UploadConfig{UploadBasePath: dir, MediaURL: "/media"})
	body := append(pngBytes(t), []byte("<script>alert(1)</script>")...)

	url, err := store.Save(context.Background(), "airports", "Boryspil", Blob{
		Filename: "x.html",
		Size:     int64(len(body)),
		Body:     bytes.NewReader(body),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
	assert.NotContains(t, url, ".html")

	_, err = os.Stat(filepath.Join(dir, "airports", filepath.Base(url)))
	assert.NoError(t, err)
}

func TestLocalStore_Rejects(t *testing.T) {
	store := NewLocalStore(UploadConfig{UploadBasePath: t.TempDir(), MaxSizeBytes: 1024})

	testCases := []struct {
		name string
		blob Blob
	}{
		{
			name: "too large",
			blob: Blob{Filename: "big.png", Size: 4096, Body: bytes.NewReader(make([]byte, 4096))},
		},
		{
			name: "not an image",
			blob: Blob{Filename: "notes.txt", Size: 11, Body: strings.NewReader("hello world")},
		},
		{
			name: "empty",
			blob: Blob{Filename: "empty.png", Size: 0, Body: bytes.NewReader(nil)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Save(context.Background(), "airports", "x", tc.blob)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Fields, "image")
		})
	}
}
