package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config chứa toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Port    string `env:"PORT" envDefault:"3000"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	UploadDir        string `env:"UPLOAD_DIR" envDefault:"uploads"`
	StorageDriver    string `env:"STORAGE_DRIVER" envDefault:"file"`
	CloudinaryURL    string `env:"CLOUDINARY_URL"`
	CloudinaryFolder string `env:"CLOUDINARY_FOLDER" envDefault:"checkin-selfies"`

	PublicURL        string   `env:"PUBLIC_URL"`
	MaxBodyBytes     int64    `env:"MAX_BODY_BYTES" envDefault:"10485760"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// FeedEnabled mở /ws cho màn hình của nhân viên; feed không có xác thực nên mặc định tắt
	FeedEnabled bool `env:"FEED_ENABLED" envDefault:"false"`

	OrphanSweepSpec string        `env:"ORPHAN_SWEEP_SPEC" envDefault:"@every 10m"`
	OrphanGrace     time.Duration `env:"ORPHAN_GRACE" envDefault:"5m"`
}

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

// ParseEnv đọc Config từ biến môi trường
func ParseEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Load = LoadEnv + ParseEnv
func Load() (*Config, error) {
	LoadEnv()
	return ParseEnv()
}

// Addr trả về địa chỉ lắng nghe của HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
