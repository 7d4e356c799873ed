package dto

import "strings"

// CheckinRequest định nghĩa payload gửi lên từ trang check-in
type CheckinRequest struct {
	Checked bool   `json:"checked" schema:"checked" validate:"required"`
	Name    string `json:"name" schema:"name" validate:"required"`
	Phone   string `json:"phone" schema:"phone" validate:"required"`
	Selfie  string `json:"selfie" schema:"selfie" validate:"required,imagedataurl"`
}

// Normalize cắt khoảng trắng ở tên và số điện thoại
func (r *CheckinRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Selfie = strings.TrimSpace(r.Selfie)
}

// CheckinEvent được broadcast tới màn hình lễ tân qua websocket
type CheckinEvent struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse định nghĩa response cho /healthz
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
