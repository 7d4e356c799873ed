package config

import (
	"fmt"
	"strings"

	"kiosk/services/logger"
	"kiosk/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary khởi tạo client từ CLOUDINARY_URL
func ConnectCloudinary(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is required for the cloudinary storage driver")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return cld, nil
}

// InitStorage tạo thư mục upload và backend lưu trữ theo STORAGE_DRIVER
func InitStorage(cfg *Config, log logger.Logger) (storage.Store, error) {
	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.StorageDriver) {
	case "", storage.DriverFile:
		log.Info("Storing check-ins under %s", cfg.UploadDir)
		return files, nil
	case storage.DriverCloudinary:
		cld, err := ConnectCloudinary(cfg.CloudinaryURL)
		if err != nil {
			return nil, err
		}
		log.Info("Storing selfies in cloudinary folder %s, records under %s", cfg.CloudinaryFolder, cfg.UploadDir)
		return storage.NewCloudinaryStore(cld, cfg.CloudinaryFolder, files), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
