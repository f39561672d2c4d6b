package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daily_quiz_backend/internal/util"
	"daily_quiz_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaService handles uploads attached to questions and institutions:
// images pass straight through to storage, videos additionally get probed
// and a thumbnail extracted.
type MediaService struct {
	Storage *StorageService
}

func NewMediaService(storage *StorageService) *MediaService {
	return &MediaService{Storage: storage}
}

// UploadResult describes a stored media file.
type UploadResult struct {
	Filename     string          `json:"filename"`
	URL          string          `json:"url"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	MimeType     string          `json:"mimeType"`
	Size         int64           `json:"size"`
	VideoInfo    *util.VideoInfo `json:"videoInfo,omitempty"`
}

// Upload validates and stores one uploaded file. The stored name is a UUID
// with the original extension, sharded into a date directory.
func (s *MediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	if fileHeader.Size > util.MaxUploadSize {
		return nil, fmt.Errorf("file too large: %d bytes", fileHeader.Size)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtension(ext) {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return nil, err
	}
	mimeType, err := util.ValidateMimeType(bytes.NewReader(head[:n]), []string{util.MimeImage, util.MimeVideo})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String(), ext)

	result := &UploadResult{
		Filename: filename,
		MimeType: mimeType,
		Size:     fileHeader.Size,
	}

	if util.IsVideo(mimeType) {
		return s.uploadVideo(ctx, src, filename, mimeType, result)
	}
	if !util.IsImage(mimeType) {
		return nil, fmt.Errorf("unsupported media type: %s", mimeType)
	}

	url, err := s.Storage.Upload(ctx, filename, src, fileHeader.Size, mimeType)
	if err != nil {
		return nil, err
	}
	result.URL = url
	return result, nil
}

// uploadVideo spools the video to a temp file first so ffmpeg can probe it
// and cut a thumbnail before it goes to storage.
func (s *MediaService) uploadVideo(ctx context.Context, src io.Reader, filename, mimeType string, result *UploadResult) (*UploadResult, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	if info, err := util.GetVideoInfo(tmpPath); err == nil {
		result.VideoInfo = info
	} else {
		logger.Log.Warn("failed to probe uploaded video", zap.String("file", filename), zap.Error(err))
	}

	url, err := s.Storage.UploadFile(ctx, filename, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}
	result.URL = url

	thumbPath := tmpPath + ".jpg"
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err == nil {
		defer os.Remove(thumbPath)
		thumbName := strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
		if thumbURL, err := s.Storage.UploadFile(ctx, thumbName, thumbPath, "image/jpeg"); err == nil {
			result.ThumbnailURL = thumbURL
		}
	} else {
		logger.Log.Warn("failed to generate video thumbnail", zap.String("file", filename), zap.Error(err))
	}

	return result, nil
}

func (s *MediaService) Delete(ctx context.Context, filename string) error {
	return s.Storage.Delete(ctx, filename)
}

func allowedExtension(ext string) bool {
	for _, allowed := range util.AllowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
