package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// Media uploads user images to the object store. Uploads are standalone: the
// returned public URL is saved on the profile by a later update, not here.
type Media struct {
	storage  model.Storage
	basePath string
	logger   *logger.Logger

	now func() time.Time
}

func NewMedia(storage model.Storage, basePath string, logger *logger.Logger) *Media {
	return &Media{
		storage:  storage,
		basePath: strings.Trim(basePath, "/"),
		logger:   logger,
		now:      time.Now,
	}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores the file under a date-partitioned random key and returns
// its public URL. The original filename only contributes the extension.
func (s *Media) UploadImage(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedImageExts[ext] {
		return "", model.ErrUnsupportedImage
	}

	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, err := io.ReadFull(reader, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return "", fmt.Errorf("failed to read image head: %w", err)
		}
		head = head[:n]
		contentType = http.DetectContentType(head)
		reader = io.MultiReader(strings.NewReader(string(head)), reader)
	}

	now := s.now().UTC()
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	key := fmt.Sprintf("%s/%04d/%02d/%02d/%s%s", s.basePath, now.Year(), now.Month(), now.Day(), name, ext)

	url, err := s.storage.Upload(ctx, key, contentType, reader, size)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("image uploaded", "key", key, "content_type", contentType, "size", size)

	return url, nil
}
