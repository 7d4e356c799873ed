package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidImage  ErrorCode = "INVALID_IMAGE"
	ErrCodeInvalidBody   ErrorCode = "INVALID_BODY"

	// Storage errors
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsClientError cho biết lỗi do dữ liệu client gửi lên (HTTP 400)
func (e *AppError) IsClientError() bool {
	switch e.Code {
	case ErrCodeRequiredField, ErrCodeInvalidFormat, ErrCodeInvalidImage, ErrCodeInvalidBody:
		return true
	}
	return false
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidDataURL  = errors.New("invalid data url")
	ErrEmptyImage      = errors.New("empty image payload")
)
