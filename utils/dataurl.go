package utils

import (
	"encoding/base64"
	"strings"

	"kiosk/errors"
)

const (
	imageDataURLPrefix = "data:image/"
	base64Marker       = ";base64,"
)

// IsImageDataURL kiểm tra chuỗi có dạng data:image/<type>;base64,<payload>
func IsImageDataURL(s string) bool {
	return strings.HasPrefix(s, imageDataURLPrefix) && strings.Contains(s, base64Marker)
}

// DecodeImageDataURL giải mã phần base64 của data URL ảnh
func DecodeImageDataURL(s string) ([]byte, error) {
	if !IsImageDataURL(s) {
		return nil, errors.ErrInvalidDataURL
	}

	payload := s[strings.Index(s, base64Marker)+len(base64Marker):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// một số trình duyệt bỏ padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, err
		}
	}
	if len(data) == 0 {
		return nil, errors.ErrEmptyImage
	}
	return data, nil
}
