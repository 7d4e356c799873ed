package constants

// WaiverVersion được ghi vào mỗi bản ghi check-in.
// Phải tăng thủ công mỗi khi nội dung waiver trên trang thay đổi.
const WaiverVersion = "v1.0"

// Quy ước đặt tên file
const (
	SelfiePrefix    = "selfie_"
	RecordPrefix    = "record_"
	SelfieExtension = ".jpg"
	RecordExtension = ".json"

	MaxNameTokenLength = 30
	DefaultNameToken   = "guest"

	// số lần thử hậu tố khi tên file đã bị lượt khác dùng
	MaxFilenameAttempts = 5
)

// Định dạng thời gian ISO-8601 (UTC, mili giây)
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Thông báo trả về cho client
const (
	MessageMissingFields  = "Please fill in all fields, take a selfie, and check the box"
	MessageInvalidImage   = "Invalid image format"
	MessageInvalidData    = "Invalid image data"
	MessageInvalidBody    = "Invalid request body"
	MessageServerError    = "Server error. Please try again."
	MessageThankYouFormat = "Thank you %s! Your check-in has been confirmed."
)
