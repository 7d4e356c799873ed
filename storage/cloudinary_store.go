package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"kiosk/constants"
	"kiosk/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type imageUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStore đẩy ảnh selfie lên Cloudinary, bản ghi JSON vẫn nằm trên đĩa
type CloudinaryStore struct {
	uploader imageUploader
	folder   string
	records  *FileStore
}

// NewCloudinaryStore dùng cld.Upload cho ảnh và records cho file JSON
func NewCloudinaryStore(cld *cloudinary.Cloudinary, folder string, records *FileStore) *CloudinaryStore {
	return newCloudinaryStore(&cld.Upload, folder, records)
}

func newCloudinaryStore(u imageUploader, folder string, records *FileStore) *CloudinaryStore {
	return &CloudinaryStore{
		uploader: u,
		folder:   folder,
		records:  records,
	}
}

func (s *CloudinaryStore) Driver() string {
	return DriverCloudinary
}

func publicID(filename string) string {
	return strings.TrimSuffix(filename, constants.SelfieExtension)
}

func (s *CloudinaryStore) SaveSelfie(ctx context.Context, filename string, data []byte) error {
	overwrite := false
	resp, err := s.uploader.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:  publicID(filename),
		Folder:    s.folder,
		Overwrite: &overwrite,
	})
	if err != nil {
		return fmt.Errorf("cloudinary upload %s: %w", filename, err)
	}
	if resp != nil && resp.Error.Message != "" {
		return fmt.Errorf("cloudinary upload %s: %s", filename, resp.Error.Message)
	}
	if uploadedExisting(resp) {
		return fmt.Errorf("cloudinary upload %s: %w", filename, ErrExists)
	}
	return nil
}

// uploadedExisting báo Cloudinary đã giữ asset cũ thay vì ghi (overwrite=false)
func uploadedExisting(resp *uploader.UploadResult) bool {
	if resp == nil {
		return false
	}
	raw, ok := resp.Response.(*interface{})
	if !ok || raw == nil {
		return false
	}
	fields, ok := (*raw).(map[string]interface{})
	if !ok {
		return false
	}
	existing, _ := fields["existing"].(bool)
	return existing
}

func (s *CloudinaryStore) RemoveSelfie(ctx context.Context, filename string) error {
	resp, err := s.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID: path.Join(s.folder, publicID(filename)),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", filename, err)
	}
	if resp != nil && resp.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", filename, resp.Error.Message)
	}
	return nil
}

func (s *CloudinaryStore) SaveRecord(ctx context.Context, filename string, record *models.CheckinRecord) error {
	return s.records.SaveRecord(ctx, filename, record)
}

var _ Store = (*CloudinaryStore)(nil)
