package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kiosk/models"
	"kiosk/utils"

	"github.com/goccy/go-json"
)

// FileStore lưu ảnh và bản ghi JSON trong cùng một thư mục
type FileStore struct {
	dir string
}

// NewFileStore tạo thư mục lưu trữ nếu chưa tồn tại
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Driver() string {
	return DriverFile
}

func (s *FileStore) SaveSelfie(_ context.Context, filename string, data []byte) error {
	return writeFileAtomic(filepath.Join(s.dir, filename), data)
}

func (s *FileStore) RemoveSelfie(_ context.Context, filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) SaveRecord(_ context.Context, filename string, record *models.CheckinRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.dir, filename), data)
}

// SweepOrphans xóa các file selfie_*.jpg không có record tương ứng
// và cũ hơn grace, trả về số file đã xóa
func (s *FileStore) SweepOrphans(ctx context.Context, grace time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}
		recordName, ok := utils.RecordFilenameForSelfie(entry.Name())
		if !ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.dir, recordName)); err == nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < grace {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// writeFileAtomic ghi vào file tạm cùng thư mục rồi link sang tên thật,
// người đọc không bao giờ thấy file ghi dở và file có sẵn không bị ghi đè
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	// Link không ghi đè file đã tồn tại, khác với Rename
	err = os.Link(tmpName, path)
	os.Remove(tmpName)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", filepath.Base(path), ErrExists)
		}
		return err
	}
	return nil
}

var _ Store = (*FileStore)(nil)
var _ OrphanSweeper = (*FileStore)(nil)
