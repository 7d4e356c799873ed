package utils

import (
	"regexp"
	"strings"
	"time"

	"kiosk/constants"

	"github.com/fiam/gounidecode/unidecode"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeName chuyển tên về ASCII, bỏ các ký tự ngoài [A-Za-z0-9_-]
// và cắt còn tối đa MaxNameTokenLength ký tự
func SanitizeName(name string) string {
	token := unidecode.Unidecode(strings.TrimSpace(name))
	token = unsafeNameChars.ReplaceAllString(token, "")
	if len(token) > constants.MaxNameTokenLength {
		token = token[:constants.MaxNameTokenLength]
	}
	if token == "" {
		return constants.DefaultNameToken
	}
	return token
}

// FormatTimestamp trả về thời điểm dạng ISO-8601 UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}

// TimestampToken là FormatTimestamp với ':' và '.' thay bằng '-'
func TimestampToken(t time.Time) string {
	return strings.NewReplacer(":", "-", ".", "-").Replace(FormatTimestamp(t))
}

// SelfieFilename trả về tên file ảnh, vd selfie_JoLee_2026-10-18T09-30-00-000Z.jpg
func SelfieFilename(nameToken, tsToken string) string {
	return constants.SelfiePrefix + nameToken + "_" + tsToken + constants.SelfieExtension
}

// RecordFilename trả về tên file bản ghi JSON đi kèm ảnh
func RecordFilename(nameToken, tsToken string) string {
	return constants.RecordPrefix + nameToken + "_" + tsToken + constants.RecordExtension
}

// RecordFilenameForSelfie suy ra tên file bản ghi từ tên file ảnh.
// Trả về false nếu tên không đúng quy ước.
func RecordFilenameForSelfie(selfie string) (string, bool) {
	if !strings.HasPrefix(selfie, constants.SelfiePrefix) || !strings.HasSuffix(selfie, constants.SelfieExtension) {
		return "", false
	}
	core := strings.TrimSuffix(strings.TrimPrefix(selfie, constants.SelfiePrefix), constants.SelfieExtension)
	if core == "" {
		return "", false
	}
	return constants.RecordPrefix + core + constants.RecordExtension, true
}
