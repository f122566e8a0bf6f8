package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cafemine/mine-backend/internal/config"
)

// multipartUpload builds a parsed multipart file for SaveUpload tests.
func multipartUpload(t *testing.T, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload.bin"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parse form file: %v", err)
	}
	return file, fh
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	s := NewMediaService(&config.Config{UploadDir: dir, MaxUploadBytes: 1024})

	content := []byte("\x89PNG fake image data")
	file, fh := multipartUpload(t, "image/png", content)
	defer file.Close()

	url, err := s.SaveUpload(file, fh)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want /uploads/<uuid>.png", url)
	}

	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !bytes.Equal(saved, content) {
		t.Error("saved file content does not match upload")
	}
}

func TestSaveUploadUnsupportedType(t *testing.T) {
	s := NewMediaService(&config.Config{UploadDir: t.TempDir(), MaxUploadBytes: 1024})

	for _, contentType := range []string{"application/pdf", "text/html", "image/svg+xml", ""} {
		file, fh := multipartUpload(t, contentType, []byte("payload"))
		_, err := s.SaveUpload(file, fh)
		file.Close()
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("SaveUpload(%q) = %v, want ErrUnsupportedFileType", contentType, err)
		}
	}
}

func TestSaveUploadTooLarge(t *testing.T) {
	s := NewMediaService(&config.Config{UploadDir: t.TempDir(), MaxUploadBytes: 8})

	file, fh := multipartUpload(t, "image/jpeg", []byte("more than eight bytes"))
	defer file.Close()

	if _, err := s.SaveUpload(file, fh); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("SaveUpload oversize = %v, want ErrFileTooLarge", err)
	}
}
