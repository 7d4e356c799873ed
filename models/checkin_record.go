package models

// CheckinRecord là bản ghi JSON được lưu cạnh ảnh selfie.
// Tạo một lần cho mỗi lượt check-in thành công, không bao giờ sửa hay xóa.
type CheckinRecord struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Timestamp      string `json:"timestamp"`
	SelfieFilename string `json:"selfieFilename"`
	WaiverVersion  string `json:"waiverVersion"`
	AgreedToTerms  bool   `json:"agreedToTerms"`
	ClientIP       string `json:"clientIP"`
}
