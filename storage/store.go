package storage

import (
	"context"
	"errors"
	"time"

	"kiosk/models"
)

const (
	DriverFile       = "file"
	DriverCloudinary = "cloudinary"
)

// ErrExists trả về khi tên file đã được dùng, backend không bao giờ ghi đè
var ErrExists = errors.New("file already exists")

// Store lưu ảnh selfie và bản ghi check-in, mỗi lượt check-in hai artifact
type Store interface {
	SaveSelfie(ctx context.Context, filename string, data []byte) error
	RemoveSelfie(ctx context.Context, filename string) error
	SaveRecord(ctx context.Context, filename string, record *models.CheckinRecord) error
	Driver() string
}

// OrphanSweeper xóa ảnh không có bản ghi đi kèm (do tiến trình chết giữa hai lần ghi)
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context, grace time.Duration, now time.Time) (int, error)
}
