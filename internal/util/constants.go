package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Upload validation constants.
const (
	MimeImage = "image/"
	MimeVideo = "video/"

	MaxUploadSize = 50 << 20 // 50MB
)

var (
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".wmv", ".webm"}
)
